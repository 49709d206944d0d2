// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is the coarse state of the most recent sync attempt.
type SyncState string

const (
	SyncIdle    SyncState = "idle"
	SyncLoading SyncState = "loading"
	SyncSuccess SyncState = "success"
	SyncError   SyncState = "error"
)

// SyncStatus is overwritten on every push or pull attempt.
type SyncStatus struct {
	State   SyncState `json:"state"`
	Message string    `json:"message"`
	// LastSynced is the human-readable local time of the last successful
	// push or pull, empty when none happened yet.
	LastSynced string `json:"lastSynced,omitempty"`
}

// Settings keys persisted by the sync controller. Each key is written
// independently as soon as its value changes.
const (
	SettingToken        = "flatnav_github_token"
	SettingDocumentID   = "flatnav_gist_id"
	SettingAutoSync     = "flatnav_auto_sync"
	SettingLastSyncTime = "flatnav_last_sync_time"
)

// Settings keys persisted by the dashboard service.
const (
	SettingAppName        = "flatnav_app_name"
	SettingAppSubtitle    = "flatnav_app_subtitle"
	SettingAppFontSize    = "flatnav_app_font_size"
	SettingTheme          = "flatnav_theme"
	SettingActiveCategory = "flatnav_active_category"
)

// LastSyncLayout formats the last successful sync time for display and
// persistence.
const LastSyncLayout = "2006-01-02 15:04:05"
