package tui

import "github.com/MKhiriev/go-flatnav/models"

// statusChangedMsg carries a sync status published by the sync service.
type statusChangedMsg struct {
	status models.SyncStatus
}

// dashboardChangedMsg is sent after any dashboard mutation, including ones
// made by a restore running outside the UI.
type dashboardChangedMsg struct{}

// settingsChangedMsg is sent after the token, document id or auto-sync flag
// changed.
type settingsChangedMsg struct{}

// opDoneMsg reports the outcome of a command started from the UI.
type opDoneMsg struct {
	notice string
	err    error
}

type clearNoticeMsg struct{}
