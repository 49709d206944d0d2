package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/adapter"
	"github.com/MKhiriev/go-flatnav/internal/app"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/models"
)

var bearerPrefix = regexp.MustCompile(`(?i)^Bearer\s+`)

type clientSyncService struct {
	settings  store.SettingsRepository
	documents adapter.DocumentStore
	now       func() time.Time
	logger    *logger.Logger

	mu         sync.RWMutex
	token      string
	documentID string
	autoSync   bool
	lastSynced string
	status     models.SyncStatus

	settingsListeners listeners[struct{}]
	statusListeners   listeners[models.SyncStatus]
}

// NewClientSyncService builds the controller. Call Init before use.
func NewClientSyncService(settings store.SettingsRepository, documents adapter.DocumentStore, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		settings:  settings,
		documents: documents,
		now:       time.Now,
		logger:    logger,
		status:    models.SyncStatus{State: models.SyncIdle, Message: app.MsgReady},
	}
}

func (s *clientSyncService) Init(ctx context.Context) error {
	token, err := s.loadSetting(ctx, models.SettingToken)
	if err != nil {
		return err
	}
	documentID, err := s.loadSetting(ctx, models.SettingDocumentID)
	if err != nil {
		return err
	}
	autoSync, err := s.loadSetting(ctx, models.SettingAutoSync)
	if err != nil {
		return err
	}
	lastSynced, err := s.loadSetting(ctx, models.SettingLastSyncTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.documentID = documentID
	s.autoSync = autoSync == "true"
	s.lastSynced = lastSynced
	s.status = models.SyncStatus{State: models.SyncIdle, Message: app.MsgReady, LastSynced: lastSynced}
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "clientSyncService.Init").
		Bool("has_token", token != "").
		Str("document_id", documentID).
		Bool("auto_sync", autoSync == "true").
		Msg("sync settings loaded")

	return nil
}

// loadSetting treats a key that was never written as empty.
func (s *clientSyncService) loadSetting(ctx context.Context, key string) (string, error) {
	value, err := s.settings.GetSetting(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.Init").Str("key", key).Msg("failed to load setting")
		return "", fmt.Errorf("error loading %s: %w", key, err)
	}
	return value, nil
}

func (s *clientSyncService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *clientSyncService) HasToken() bool {
	return s.Token() != ""
}

func (s *clientSyncService) SetToken(ctx context.Context, raw string) error {
	clean := bearerPrefix.ReplaceAllString(strings.TrimSpace(raw), "")

	if err := s.settings.SetSetting(ctx, models.SettingToken, clean); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.SetToken").Msg("failed to persist token")
		return fmt.Errorf("error saving token: %w", err)
	}

	s.mu.Lock()
	s.token = clean
	s.mu.Unlock()

	if clean != "" {
		s.setStatus(models.SyncIdle, app.MsgTokenUpdated)
	}
	s.settingsListeners.notify(struct{}{})

	return nil
}

func (s *clientSyncService) DocumentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentID
}

func (s *clientSyncService) SetDocumentID(ctx context.Context, id string) error {
	if err := s.storeDocumentID(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}

	s.setStatus(models.SyncIdle, app.MsgDocumentUpdated)
	s.settingsListeners.notify(struct{}{})
	return nil
}

func (s *clientSyncService) storeDocumentID(ctx context.Context, id string) error {
	if err := s.settings.SetSetting(ctx, models.SettingDocumentID, id); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.storeDocumentID").Str("document_id", id).Msg("failed to persist document id")
		return fmt.Errorf("error saving document id: %w", err)
	}

	s.mu.Lock()
	s.documentID = id
	s.mu.Unlock()
	return nil
}

func (s *clientSyncService) AutoSync() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoSync
}

func (s *clientSyncService) SetAutoSync(ctx context.Context, enabled bool) error {
	if err := s.settings.SetSetting(ctx, models.SettingAutoSync, strconv.FormatBool(enabled)); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.SetAutoSync").Bool("enabled", enabled).Msg("failed to persist auto-sync flag")
		return fmt.Errorf("error saving auto-sync flag: %w", err)
	}

	s.mu.Lock()
	s.autoSync = enabled
	s.mu.Unlock()

	s.settingsListeners.notify(struct{}{})
	return nil
}

func (s *clientSyncService) Status() models.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *clientSyncService) OnSettingsChange(fn func()) func() {
	return s.settingsListeners.add(func(struct{}) { fn() })
}

func (s *clientSyncService) OnStatusChange(fn func(models.SyncStatus)) func() {
	return s.statusListeners.add(fn)
}

func (s *clientSyncService) Push(ctx context.Context, snapshot models.Snapshot, silent bool) error {
	token := s.Token()
	if token == "" {
		s.setStatus(models.SyncError, app.MsgNotConfigured)
		return ErrNoCredential
	}

	if !silent {
		s.setStatus(models.SyncLoading, app.MsgPushing)
	}

	content, err := encodeSnapshot(snapshot)
	if err != nil {
		return s.fail(ctx, "clientSyncService.Push", err)
	}

	id, err := s.resolveDocument(ctx, token)
	if err != nil {
		return s.fail(ctx, "clientSyncService.Push", err)
	}

	if id == "" {
		id, err = s.documents.Create(ctx, token, content)
	} else {
		err = s.documents.Update(ctx, token, id, content)
	}
	if err != nil {
		return s.fail(ctx, "clientSyncService.Push", err)
	}

	if id != s.DocumentID() {
		if err = s.storeDocumentID(ctx, id); err != nil {
			return s.fail(ctx, "clientSyncService.Push", err)
		}
	}

	now := s.now().Format(models.LastSyncLayout)
	if err = s.settings.SetSetting(ctx, models.SettingLastSyncTime, now); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.Push").Msg("failed to persist last sync time")
	}

	s.mu.Lock()
	s.lastSynced = now
	s.mu.Unlock()
	s.setStatus(models.SyncSuccess, app.MsgPushed)

	s.logger.Info().
		Str("func", "clientSyncService.Push").
		Str("document_id", id).
		Bool("silent", silent).
		Int("size", len(content)).
		Msg("backup pushed")

	return nil
}

func (s *clientSyncService) Pull(ctx context.Context) (models.RawSnapshot, error) {
	token := s.Token()
	if token == "" {
		s.setStatus(models.SyncError, app.MsgNotConfigured)
		return nil, ErrNoCredential
	}

	s.setStatus(models.SyncLoading, app.MsgPulling)

	id, err := s.resolveDocument(ctx, token)
	if err != nil {
		return nil, s.fail(ctx, "clientSyncService.Pull", err)
	}
	if id == "" {
		return nil, s.fail(ctx, "clientSyncService.Pull", ErrBackupNotFound)
	}

	if id != s.DocumentID() {
		if err = s.storeDocumentID(ctx, id); err != nil {
			return nil, s.fail(ctx, "clientSyncService.Pull", err)
		}
	}

	content, err := s.documents.Read(ctx, token, id)
	if errors.Is(err, adapter.ErrFileNotFound) {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.Pull").Str("document_id", id).Msg("document has no backup file")
		err = ErrMalformedBackup
	}
	if err != nil {
		return nil, s.fail(ctx, "clientSyncService.Pull", err)
	}

	raw, err := decodeSnapshot(content)
	if err != nil {
		return nil, s.fail(ctx, "clientSyncService.Pull", err)
	}

	s.setStatus(models.SyncSuccess, app.MsgPulled)
	s.logger.Info().
		Str("func", "clientSyncService.Pull").
		Str("document_id", id).
		Int("size", len(content)).
		Msg("backup pulled")

	return raw, nil
}

// resolveDocument returns the cached document id, or the first listed
// document holding the backup file. An empty id without error means no
// such document exists.
func (s *clientSyncService) resolveDocument(ctx context.Context, token string) (string, error) {
	if id := s.DocumentID(); id != "" {
		return id, nil
	}

	documents, err := s.documents.List(ctx, token)
	if err != nil {
		return "", err
	}

	for _, d := range documents {
		if d.HasFile(models.CanonicalFileName) {
			s.logger.Debug().Str("func", "clientSyncService.resolveDocument").Str("document_id", d.ID).Msg("backup document discovered")
			return d.ID, nil
		}
	}

	return "", nil
}

// fail records err in the status. A rejected token switches auto-sync off;
// a vanished document drops the cached id so the next push rediscovers.
func (s *clientSyncService) fail(ctx context.Context, op string, err error) error {
	s.logger.Err(err).Str("func", op).Msg("sync failed")

	if errors.Is(err, adapter.ErrUnauthorized) && s.AutoSync() {
		if disableErr := s.SetAutoSync(ctx, false); disableErr != nil {
			s.logger.Err(disableErr).Str("func", op).Msg("failed to disable auto-sync")
		}
	}

	if errors.Is(err, adapter.ErrNotFound) && s.DocumentID() != "" {
		if clearErr := s.storeDocumentID(ctx, ""); clearErr != nil {
			s.logger.Err(clearErr).Str("func", op).Msg("failed to clear document id")
		}
	}

	s.setStatus(models.SyncError, statusMessage(err))
	return err
}

func (s *clientSyncService) setStatus(state models.SyncState, message string) {
	s.mu.Lock()
	s.status = models.SyncStatus{State: state, Message: message, LastSynced: s.lastSynced}
	status := s.status
	s.mu.Unlock()

	s.statusListeners.notify(status)
}

// encodeSnapshot renders the envelope the way it is stored remotely and in
// export files.
func encodeSnapshot(snapshot models.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding snapshot: %w", err)
	}
	return string(data), nil
}

func decodeSnapshot(content string) (models.RawSnapshot, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrMalformedBackup
	}

	var raw models.RawSnapshot
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBackup, err)
	}
	if raw == nil {
		return nil, ErrMalformedBackup
	}
	return raw, nil
}
