package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-flatnav/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService is the sync state controller. It owns the token, the
// cached document id, the auto-sync flag and the last sync status. Every
// mutator persists its value before returning.
type ClientSyncService interface {
	// Init loads each persisted value. Missing values keep their zero
	// state.
	Init(ctx context.Context) error

	Token() string
	HasToken() bool
	// SetToken trims raw, strips a leading "Bearer " and persists the
	// result. The status is reset to idle; no request is made.
	SetToken(ctx context.Context, raw string) error

	DocumentID() string
	// SetDocumentID persists a document id entered by the user.
	SetDocumentID(ctx context.Context, id string) error

	AutoSync() bool
	// SetAutoSync persists the flag and notifies settings listeners.
	SetAutoSync(ctx context.Context, enabled bool) error

	Status() models.SyncStatus

	// Push uploads snapshot, discovering or creating the backup document
	// when no id is cached. silent suppresses only the loading status.
	Push(ctx context.Context, snapshot models.Snapshot, silent bool) error

	// Pull downloads and parses the backup. It never touches dashboard
	// state.
	Pull(ctx context.Context) (models.RawSnapshot, error)

	// OnSettingsChange registers fn to run after the token, document id or
	// auto-sync flag changed. The returned func unregisters it.
	OnSettingsChange(fn func()) (unsubscribe func())

	// OnStatusChange registers fn to run after every status update.
	OnStatusChange(fn func(models.SyncStatus)) (unsubscribe func())
}

// DashboardService owns the dashboard state. Every successful mutation is
// persisted, bumps the version and notifies subscribers.
type DashboardService interface {
	// Init loads the saved dashboard or seeds and saves the defaults.
	Init(ctx context.Context) error

	// Dashboard returns a copy of the current state.
	Dashboard() models.Dashboard

	AddCategory(ctx context.Context, name, color string) (models.Category, error)
	// RemoveCategory deletes the category and every bookmark in it.
	RemoveCategory(ctx context.Context, id string) error

	// AddBookmark assigns a new id; the category must exist.
	AddBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	RemoveBookmark(ctx context.Context, id string) error

	// UpdateConfig applies the non-nil fields of patch.
	UpdateConfig(ctx context.Context, patch models.ConfigPatch) error
	SetActiveCategory(ctx context.Context, id string) error

	ReplaceBookmarks(ctx context.Context, bookmarks []models.Bookmark) error
	// ReplaceCategories also moves the active category to the first one
	// when the current selection is gone.
	ReplaceCategories(ctx context.Context, categories []models.Category) error

	// Subscribe registers fn to run with the new version after every
	// mutation.
	Subscribe(fn func(version uint64)) (unsubscribe func())
}

// SnapshotService converts between dashboard state and backup envelopes.
type SnapshotService interface {
	Assemble() models.Snapshot
	// Restore applies every well-shaped field of raw and skips the rest.
	Restore(ctx context.Context, raw models.RawSnapshot) error

	Export(w io.Writer) error
	Import(ctx context.Context, r io.Reader) error
}

// AutoSyncTrigger pushes silently a fixed interval after the last dashboard
// or settings change while auto-sync is enabled.
type AutoSyncTrigger interface {
	// Run subscribes to change notifications and blocks until ctx is done.
	// The state seen when Run starts never schedules a push.
	Run(ctx context.Context) error
	// Stop cancels a pending push, unsubscribes and waits for an in-flight
	// push to finish. Safe to call more than once.
	Stop()
}

// BootstrapPuller restores the cloud backup once at startup.
type BootstrapPuller interface {
	// Run waits for the configured delay, then pulls and restores when a
	// token is present. Failures are logged, not returned. Only the first
	// call does anything.
	Run(ctx context.Context) error
}
