package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flatnav/internal/logger"
)

const settingsTable = "settings"

// upsertSettingSuffix makes INSERT overwrite an existing key. The syntax is
// shared by SQLite and PostgreSQL.
const upsertSettingSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSetting returns the stored value of key or [ErrSettingNotFound].
func (s *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).
			Str("func", "settingsRepository.GetSetting").
			Str("key", key).
			Msg("failed to read setting")
		return "", s.classify(ErrExecutingQuery, err)
	}

	return value, nil
}

// SetSetting inserts or overwrites key.
func (s *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertSetting(s.builder(), key, value).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SetSetting").
			Str("key", key).
			Msg("failed to write setting")
		return s.classify(ErrExecutingStatement, err)
	}

	return nil
}

func upsertSetting(b sq.StatementBuilderType, key, value string) sq.InsertBuilder {
	return b.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(upsertSettingSuffix)
}
