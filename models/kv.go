// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DashboardBlobKey is the key under which the key-value proxy stores the
// dashboard document.
const DashboardBlobKey = "dashboard_data"

// Blob is a stored key-value proxy record.
type Blob struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}

// EmptyResponse is returned by the proxy when nothing was stored yet.
type EmptyResponse struct {
	Empty bool `json:"empty"`
}

// SuccessResponse acknowledges a stored write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries a failure message back to proxy callers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Storage states reported in [ProxyInfo].
const (
	StorageOK          = "ok"
	StorageUnavailable = "unavailable"
)

// ProxyInfo is the body of GET /api/info. Stored, Size and UpdatedAt
// describe the dashboard document and are zero while storage is down.
type ProxyInfo struct {
	Version   string     `json:"version"`
	Storage   string     `json:"storage"`
	Stored    bool       `json:"stored"`
	Size      int        `json:"size"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WriteToken is a parsed proxy write token.
//
// The proxy accepts a write only when the x-auth-token header holds a token
// signed with the configured key; Subject names the device or person the
// token was issued to.
type WriteToken struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
}
