// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the write-auth middleware when reading the
// x-auth-token header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthToken is returned when the request has no x-auth-token
	// header at all.
	ErrEmptyAuthToken = errors.New("empty `x-auth-token` header")

	// ErrInvalidAuthToken is returned when the header is present but the
	// token does not verify.
	ErrInvalidAuthToken = errors.New("invalid `x-auth-token` header")
)
