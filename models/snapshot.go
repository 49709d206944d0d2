// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

const (
	// SnapshotVersion is written into every assembled envelope.
	SnapshotVersion = 1

	// CanonicalFileName is the file inside a remote document that holds the
	// backup. Discovery matches documents by this name.
	CanonicalFileName = "flatnav_backup.json"

	// DocumentDescription is the description attached to documents created
	// by a push.
	DocumentDescription = "FlatNav Dashboard Backup (Auto-Sync)"
)

// Snapshot is the backup envelope exchanged with the remote store and with
// export files.
type Snapshot struct {
	Version    int             `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Bookmarks  []Bookmark      `json:"bookmarks"`
	Categories []Category      `json:"categories"`
	Config     DashboardConfig `json:"config"`
}

// RawSnapshot is a parsed but not yet validated envelope. Every top-level
// field is kept as raw JSON so a restore can accept well-shaped fields and
// skip the rest.
type RawSnapshot map[string]json.RawMessage

// Field returns the raw value stored under name and whether it is present
// and not JSON null.
func (r RawSnapshot) Field(name string) (json.RawMessage, bool) {
	v, ok := r[name]
	if !ok || len(v) == 0 || string(v) == "null" {
		return nil, false
	}
	return v, true
}
