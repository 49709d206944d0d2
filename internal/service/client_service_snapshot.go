package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/validators"
	"github.com/MKhiriev/go-flatnav/models"
)

// snapshotTimestampLayout is ISO-8601 with milliseconds, always in UTC.
const snapshotTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type snapshotService struct {
	dashboard DashboardService
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewSnapshotService(dashboard DashboardService, validator validators.Validator, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		dashboard: dashboard,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *snapshotService) Assemble() models.Snapshot {
	d := s.dashboard.Dashboard()

	snapshot := models.Snapshot{
		Version:    models.SnapshotVersion,
		Timestamp:  s.now().UTC().Format(snapshotTimestampLayout),
		Bookmarks:  d.Bookmarks,
		Categories: d.Categories,
		Config:     d.Config,
	}
	if snapshot.Bookmarks == nil {
		snapshot.Bookmarks = []models.Bookmark{}
	}
	if snapshot.Categories == nil {
		snapshot.Categories = []models.Category{}
	}

	return snapshot
}

// Restore applies the fields of raw that pass validation. Invalid or absent
// fields are skipped with a warning. Inside a collection only the elements
// that cannot be stored are dropped. Only persistence failures are returned.
func (s *snapshotService) Restore(ctx context.Context, raw models.RawSnapshot) error {
	log := s.logger.With().Str("func", "snapshotService.Restore").Logger()

	if err := s.validator.Validate(ctx, raw, validators.FieldBookmarks); err != nil {
		log.Warn().Err(err).Msg("bookmarks skipped")
	} else {
		bookmarks, skipped, err := validators.RestorableBookmarks(raw)
		if err != nil {
			return fmt.Errorf("error decoding bookmarks: %w", err)
		}
		for _, reason := range skipped {
			log.Warn().Err(reason).Msg("bookmark skipped")
		}
		if err = s.dashboard.ReplaceBookmarks(ctx, bookmarks); err != nil {
			return fmt.Errorf("error restoring bookmarks: %w", err)
		}
	}

	if err := s.validator.Validate(ctx, raw, validators.FieldCategories); err != nil {
		log.Warn().Err(err).Msg("categories skipped")
	} else {
		categories, skipped, err := validators.RestorableCategories(raw)
		if err != nil {
			return fmt.Errorf("error decoding categories: %w", err)
		}
		for _, reason := range skipped {
			log.Warn().Err(reason).Msg("category skipped")
		}
		if err = s.dashboard.ReplaceCategories(ctx, categories); err != nil {
			return fmt.Errorf("error restoring categories: %w", err)
		}
	}

	patch := models.ConfigPatch{}
	targets := map[string]**string{
		validators.FieldAppName:     &patch.AppName,
		validators.FieldAppSubtitle: &patch.AppSubtitle,
		validators.FieldAppFontSize: &patch.AppFontSize,
		validators.FieldTheme:       &patch.Theme,
	}
	for _, field := range validators.ConfigFields {
		value, err := validators.ConfigString(raw, field)
		if err != nil {
			log.Warn().Err(err).Str("field", field).Msg("config field skipped")
			continue
		}
		*targets[field] = &value
	}
	if !patch.IsEmpty() {
		if err := s.dashboard.UpdateConfig(ctx, patch); err != nil {
			return fmt.Errorf("error restoring config: %w", err)
		}
	}

	if err := s.repairActiveCategory(ctx); err != nil {
		return err
	}

	log.Info().Msg("snapshot restored")
	return nil
}

func (s *snapshotService) repairActiveCategory(ctx context.Context) error {
	d := s.dashboard.Dashboard()
	if len(d.Categories) == 0 || d.HasCategory(d.ActiveCategoryID) {
		return nil
	}
	if err := s.dashboard.SetActiveCategory(ctx, d.Categories[0].ID); err != nil {
		return fmt.Errorf("error repairing active category: %w", err)
	}
	return nil
}

func (s *snapshotService) Export(w io.Writer) error {
	content, err := encodeSnapshot(s.Assemble())
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w, content+"\n"); err != nil {
		s.logger.Err(err).Str("func", "snapshotService.Export").Msg("failed to write snapshot")
		return fmt.Errorf("error writing snapshot: %w", err)
	}
	return nil
}

func (s *snapshotService) Import(ctx context.Context, r io.Reader) error {
	var raw models.RawSnapshot
	if err := json.NewDecoder(r).Decode(&raw); err != nil || raw == nil {
		s.logger.Err(err).Str("func", "snapshotService.Import").Msg("failed to parse snapshot file")
		return errors.Join(ErrInvalidSnapshotFile, err)
	}

	return s.Restore(ctx, raw)
}
