// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	errNothingToCopy = errors.New("nothing to copy")
	errEmptyTitle    = errors.New("title is required")
	errEmptyURL      = errors.New("URL is required")
	errNoCategory    = errors.New("add a category first")
)

// humanizeError shortens transport noise to something a user can act on.
// Sync failures already reach the UI through the status line, so this only
// covers local commands.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network error, check your internet connection"
	}

	return err.Error()
}
