// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/adapter"
	"github.com/MKhiriev/go-flatnav/internal/app"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

// newTestSyncSvc builds a clientSyncService with mocked storage and store.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*clientSyncService, *mock.MockSettingsRepository, *mock.MockDocumentStore) {
	t.Helper()

	settings := mock.NewMockSettingsRepository(ctrl)
	documents := mock.NewMockDocumentStore(ctrl)

	svc := NewClientSyncService(settings, documents, logger.Nop()).(*clientSyncService)
	svc.now = func() time.Time { return fixedNow }

	return svc, settings, documents
}

// withToken sets in-memory state without going through the repository.
func withToken(svc *clientSyncService, token, documentID string, autoSync bool) {
	svc.token = token
	svc.documentID = documentID
	svc.autoSync = autoSync
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Version:    models.SnapshotVersion,
		Timestamp:  "2026-03-14T09:26:53.000Z",
		Bookmarks:  []models.Bookmark{{ID: "1", Title: "Go", URL: "https://go.dev", CategoryID: "c1"}},
		Categories: []models.Category{{ID: "c1", Name: "Dev", Color: "bg-blue-500"}},
		Config:     models.DefaultConfig(),
	}
}

// statusRecorder collects every status published by the service.
type statusRecorder struct {
	mu       sync.Mutex
	statuses []models.SyncStatus
}

func (r *statusRecorder) record(s models.SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *statusRecorder) states() []models.SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SyncState, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, s.State)
	}
	return out
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Init_LoadsPersistedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)

	settings.EXPECT().GetSetting(gomock.Any(), models.SettingToken).Return("ghp_abc", nil)
	settings.EXPECT().GetSetting(gomock.Any(), models.SettingDocumentID).Return("gist-1", nil)
	settings.EXPECT().GetSetting(gomock.Any(), models.SettingAutoSync).Return("true", nil)
	settings.EXPECT().GetSetting(gomock.Any(), models.SettingLastSyncTime).Return("2026-03-01 10:00:00", nil)

	require.NoError(t, svc.Init(context.Background()))

	assert.Equal(t, "ghp_abc", svc.Token())
	assert.True(t, svc.HasToken())
	assert.Equal(t, "gist-1", svc.DocumentID())
	assert.True(t, svc.AutoSync())
	assert.Equal(t, models.SyncIdle, svc.Status().State)
	assert.Equal(t, "2026-03-01 10:00:00", svc.Status().LastSynced)
}

func TestClientSyncService_Init_MissingValuesKeepZeroState(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)

	settings.EXPECT().GetSetting(gomock.Any(), gomock.Any()).Return("", store.ErrSettingNotFound).Times(4)

	require.NoError(t, svc.Init(context.Background()))

	assert.False(t, svc.HasToken())
	assert.Empty(t, svc.DocumentID())
	assert.False(t, svc.AutoSync())
}

func TestClientSyncService_Init_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)

	dbErr := errors.New("disk I/O error")
	settings.EXPECT().GetSetting(gomock.Any(), models.SettingToken).Return("", dbErr)

	err := svc.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

// ── SetToken / SetDocumentID / SetAutoSync ─────────────────────────────────

func TestClientSyncService_SetToken_StripsBearerPrefix(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "ghp_abc", want: "ghp_abc"},
		{name: "bearer", raw: "Bearer ghp_abc", want: "ghp_abc"},
		{name: "lowercase bearer", raw: "bearer   ghp_abc", want: "ghp_abc"},
		{name: "surrounding spaces", raw: "  Bearer ghp_abc  ", want: "ghp_abc"},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, settings, _ := newTestSyncSvc(t, ctrl)

			settings.EXPECT().SetSetting(gomock.Any(), models.SettingToken, tt.want).Return(nil)

			require.NoError(t, svc.SetToken(context.Background(), tt.raw))
			assert.Equal(t, tt.want, svc.Token())
		})
	}
}

func TestClientSyncService_SetToken_NotifiesAndResetsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)
	svc.status = models.SyncStatus{State: models.SyncError, Message: app.MsgAuthFailed}

	settings.EXPECT().SetSetting(gomock.Any(), models.SettingToken, "ghp_new").Return(nil)

	calls := 0
	unsubscribe := svc.OnSettingsChange(func() { calls++ })
	defer unsubscribe()

	require.NoError(t, svc.SetToken(context.Background(), "ghp_new"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, models.SyncIdle, svc.Status().State)
	assert.Equal(t, app.MsgTokenUpdated, svc.Status().Message)
}

func TestClientSyncService_SetToken_PersistFailureKeepsOldToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)
	withToken(svc, "old", "", false)

	settings.EXPECT().SetSetting(gomock.Any(), models.SettingToken, "new").Return(errors.New("readonly"))

	require.Error(t, svc.SetToken(context.Background(), "new"))
	assert.Equal(t, "old", svc.Token())
}

func TestClientSyncService_SetDocumentID_Persists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)

	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "gist-9").Return(nil)

	require.NoError(t, svc.SetDocumentID(context.Background(), " gist-9 "))
	assert.Equal(t, "gist-9", svc.DocumentID())
	assert.Equal(t, app.MsgDocumentUpdated, svc.Status().Message)
}

func TestClientSyncService_SetAutoSync_PersistsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, _ := newTestSyncSvc(t, ctrl)

	gomock.InOrder(
		settings.EXPECT().SetSetting(gomock.Any(), models.SettingAutoSync, "true").Return(nil),
		settings.EXPECT().SetSetting(gomock.Any(), models.SettingAutoSync, "false").Return(nil),
	)

	calls := 0
	unsubscribe := svc.OnSettingsChange(func() { calls++ })

	require.NoError(t, svc.SetAutoSync(context.Background(), true))
	assert.True(t, svc.AutoSync())

	unsubscribe()

	require.NoError(t, svc.SetAutoSync(context.Background(), false))
	assert.False(t, svc.AutoSync())
	assert.Equal(t, 1, calls, "unsubscribed listener must not be called")
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Push_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl)

	err := svc.Push(context.Background(), testSnapshot(), false)

	require.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, models.SyncError, svc.Status().State)
	assert.Equal(t, app.MsgNotConfigured, svc.Status().Message)
}

func TestClientSyncService_Push_DiscoversExistingDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "", false)

	documents.EXPECT().List(gomock.Any(), "tok").Return([]models.Document{
		{ID: "other", Files: map[string]models.DocumentFile{"notes.md": {}}},
		{ID: "gist-1", Files: map[string]models.DocumentFile{models.CanonicalFileName: {}}},
		{ID: "gist-2", Files: map[string]models.DocumentFile{models.CanonicalFileName: {}}},
	}, nil)
	documents.EXPECT().Update(gomock.Any(), "tok", "gist-1", gomock.Any()).Return(nil)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "gist-1").Return(nil)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingLastSyncTime, "2026-03-14 09:26:53").Return(nil)

	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))

	assert.Equal(t, "gist-1", svc.DocumentID())
	status := svc.Status()
	assert.Equal(t, models.SyncSuccess, status.State)
	assert.Equal(t, app.MsgPushed, status.Message)
	assert.Equal(t, "2026-03-14 09:26:53", status.LastSynced)
}

func TestClientSyncService_Push_CreatesWhenNothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "", false)

	var pushed string
	documents.EXPECT().List(gomock.Any(), "tok").Return(nil, nil)
	documents.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, content string) (string, error) {
			pushed = content
			return "gist-new", nil
		})
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "gist-new").Return(nil)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingLastSyncTime, gomock.Any()).Return(nil)

	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))
	assert.Equal(t, "gist-new", svc.DocumentID())

	// pretty-printed with two spaces
	assert.Contains(t, pushed, "\n  \"version\": 1")
	var decoded models.Snapshot
	require.NoError(t, json.Unmarshal([]byte(pushed), &decoded))
	assert.Equal(t, testSnapshot(), decoded)
}

func TestClientSyncService_Push_ReusesDiscoveredDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "", false)

	documents.EXPECT().List(gomock.Any(), "tok").Return(nil, nil).Times(1)
	documents.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return("gist-new", nil).Times(1)
	documents.EXPECT().Update(gomock.Any(), "tok", "gist-new", gomock.Any()).Return(nil).Times(1)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "gist-new").Return(nil).Times(1)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingLastSyncTime, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))
	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))
}

func TestClientSyncService_Push_SilentSkipsLoadingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "gist-1", true)

	documents.EXPECT().Update(gomock.Any(), "tok", "gist-1", gomock.Any()).Return(nil).Times(2)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingLastSyncTime, gomock.Any()).Return(nil).Times(2)

	silent := &statusRecorder{}
	unsubscribe := svc.OnStatusChange(silent.record)
	require.NoError(t, svc.Push(context.Background(), testSnapshot(), true))
	unsubscribe()

	loud := &statusRecorder{}
	svc.OnStatusChange(loud.record)
	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))

	assert.Equal(t, []models.SyncState{models.SyncSuccess}, silent.states())
	assert.Equal(t, []models.SyncState{models.SyncLoading, models.SyncSuccess}, loud.states())
}

func TestClientSyncService_Push_UnauthorizedDisablesAutoSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "bad", "gist-1", true)

	documents.EXPECT().Update(gomock.Any(), "bad", "gist-1", gomock.Any()).Return(adapter.ErrUnauthorized)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingAutoSync, "false").Return(nil)

	err := svc.Push(context.Background(), testSnapshot(), true)

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, svc.AutoSync())
	assert.Equal(t, models.SyncError, svc.Status().State)
	assert.Equal(t, app.MsgAuthFailed, svc.Status().Message)
}

func TestClientSyncService_Push_UnauthorizedDuringDiscovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "bad", "", true)

	documents.EXPECT().List(gomock.Any(), "bad").Return(nil, adapter.ErrUnauthorized)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingAutoSync, "false").Return(nil)

	err := svc.Push(context.Background(), testSnapshot(), false)

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, svc.AutoSync())
}

func TestClientSyncService_Push_MissingDocumentClearsCachedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "gone", false)

	documents.EXPECT().Update(gomock.Any(), "tok", "gone", gomock.Any()).Return(adapter.ErrNotFound)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "").Return(nil)

	err := svc.Push(context.Background(), testSnapshot(), false)

	require.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, svc.DocumentID())
	assert.Equal(t, app.MsgDocumentNotFound, svc.Status().Message)
}

func TestClientSyncService_Push_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "forbidden", err: adapter.ErrForbidden, want: app.MsgForbidden},
		{name: "network", err: &adapter.NetworkError{Op: "update", Err: errors.New("dial tcp: no route")}, want: app.MsgNetworkError},
		{name: "remote", err: &adapter.RemoteError{StatusCode: 502}, want: "sync failed (502)"},
		{name: "other", err: errors.New("boom"), want: app.MsgSyncFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, documents := newTestSyncSvc(t, ctrl)
			withToken(svc, "tok", "gist-1", false)

			documents.EXPECT().Update(gomock.Any(), "tok", "gist-1", gomock.Any()).Return(tt.err)

			err := svc.Push(context.Background(), testSnapshot(), false)

			require.Error(t, err)
			assert.Equal(t, models.SyncError, svc.Status().State)
			assert.Equal(t, tt.want, svc.Status().Message)
			assert.True(t, svc.HasToken())
		})
	}
}

func TestClientSyncService_Push_SuccessClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "gist-1", false)

	gomock.InOrder(
		documents.EXPECT().Update(gomock.Any(), "tok", "gist-1", gomock.Any()).Return(adapter.ErrForbidden),
		documents.EXPECT().Update(gomock.Any(), "tok", "gist-1", gomock.Any()).Return(nil),
	)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingLastSyncTime, gomock.Any()).Return(nil)

	require.Error(t, svc.Push(context.Background(), testSnapshot(), false))
	require.NoError(t, svc.Push(context.Background(), testSnapshot(), false))
	assert.Equal(t, models.SyncSuccess, svc.Status().State)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestClientSyncService_Pull_NoTokenMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl)

	raw, err := svc.Pull(context.Background())

	require.ErrorIs(t, err, ErrNoCredential)
	assert.Nil(t, raw)
	assert.Equal(t, app.MsgNotConfigured, svc.Status().Message)
}

func TestClientSyncService_Pull_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "", false)

	content := `{"version":1,"bookmarks":[],"categories":[{"id":"c1","name":"Dev"}],"config":{"theme":"dark"}}`

	documents.EXPECT().List(gomock.Any(), "tok").Return([]models.Document{
		{ID: "gist-1", Files: map[string]models.DocumentFile{models.CanonicalFileName: {}}},
	}, nil)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "gist-1").Return(nil)
	documents.EXPECT().Read(gomock.Any(), "tok", "gist-1").Return(content, nil)

	raw, err := svc.Pull(context.Background())

	require.NoError(t, err)
	assert.Contains(t, raw, "categories")
	assert.Contains(t, raw, "config")
	assert.Equal(t, "gist-1", svc.DocumentID())
	assert.Equal(t, app.MsgPulled, svc.Status().Message)
	assert.Empty(t, svc.Status().LastSynced, "pull does not record a sync time")
}

func TestClientSyncService_Pull_NoBackupDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "", false)

	documents.EXPECT().List(gomock.Any(), "tok").Return([]models.Document{
		{ID: "other", Files: map[string]models.DocumentFile{"todo.txt": {}}},
	}, nil)

	_, err := svc.Pull(context.Background())

	require.ErrorIs(t, err, ErrBackupNotFound)
	assert.Equal(t, app.MsgBackupNotFound, svc.Status().Message)
	assert.Empty(t, svc.DocumentID())
}

func TestClientSyncService_Pull_MalformedBackup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		readErr error
	}{
		{name: "file missing", readErr: adapter.ErrFileNotFound},
		{name: "empty content", content: "  \n"},
		{name: "not json", content: "{broken"},
		{name: "json array", content: "[1,2]"},
		{name: "json null", content: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, documents := newTestSyncSvc(t, ctrl)
			withToken(svc, "tok", "gist-1", false)

			documents.EXPECT().Read(gomock.Any(), "tok", "gist-1").Return(tt.content, tt.readErr)

			_, err := svc.Pull(context.Background())

			require.ErrorIs(t, err, ErrMalformedBackup)
			assert.Equal(t, app.MsgMalformedBackup, svc.Status().Message)
			assert.Equal(t, "gist-1", svc.DocumentID(), "malformed file keeps the document id")
		})
	}
}

func TestClientSyncService_Pull_DeletedDocumentClearsCachedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "tok", "gone", false)

	documents.EXPECT().Read(gomock.Any(), "tok", "gone").Return("", adapter.ErrNotFound)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingDocumentID, "").Return(nil)

	_, err := svc.Pull(context.Background())

	require.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, svc.DocumentID())
}

func TestClientSyncService_Pull_UnauthorizedDisablesAutoSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, settings, documents := newTestSyncSvc(t, ctrl)
	withToken(svc, "bad", "gist-1", true)

	documents.EXPECT().Read(gomock.Any(), "bad", "gist-1").Return("", adapter.ErrUnauthorized)
	settings.EXPECT().SetSetting(gomock.Any(), models.SettingAutoSync, "false").Return(nil)

	_, err := svc.Pull(context.Background())

	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, svc.AutoSync())
}
