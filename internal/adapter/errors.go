// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses: the credential is
	// missing, expired or revoked.
	ErrUnauthorized = errors.New("remote store: unauthorized")
	// ErrForbidden is returned for 403 and 429 responses: either a rate
	// limit was hit or the credential lacks the required scope.
	ErrForbidden = errors.New("remote store: forbidden or rate limited")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("remote store: not found")
	// ErrFileNotFound is returned by Read when the document exists but has
	// no canonical file. It wraps [ErrNotFound].
	ErrFileNotFound = fmt.Errorf("%w: backup file missing in document", ErrNotFound)
	// ErrUnknownDriver is returned by [NewDocumentStore] for an unsupported
	// driver name.
	ErrUnknownDriver = errors.New("unknown document store driver")
)

// RemoteError is any other non-2xx response.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote store: http %d", e.StatusCode)
	}
	return fmt.Sprintf("remote store: http %d: %s", e.StatusCode, e.Body)
}

// NetworkError means no response was received at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("remote store: %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
