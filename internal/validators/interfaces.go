// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks dashboard input before it reaches application
// state: snapshot envelopes fetched from the remote store or imported from
// a file, and bookmarks or categories created by the user.
//
// A snapshot is validated field by field so a restore can apply the fields
// that are well-shaped and skip the rest.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
