package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
)

const kvTable = "kv_store"

const upsertBlobSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP"

// blobRepository is the key-value proxy storage. It runs on PostgreSQL or
// SQLite; only the placeholder format differs between the two.
type blobRepository struct {
	*DB
	logger *logger.Logger
}

func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating blob repository")
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

// GetBlob returns the document stored under key or [ErrBlobNotFound].
func (b *blobRepository) GetBlob(ctx context.Context, key string) (models.Blob, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.builder().
		Select("key", "value", "updated_at").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return models.Blob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		blob  models.Blob
		value string
	)
	err = b.DB.QueryRowContext(ctx, query, args...).Scan(&blob.Key, &value, &blob.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blob{}, ErrBlobNotFound
		}
		log.Err(err).
			Str("func", "blobRepository.GetBlob").
			Str("key", key).
			Msg("failed to read blob")
		return models.Blob{}, b.classify(ErrExecutingQuery, err)
	}
	blob.Value = json.RawMessage(value)

	return blob, nil
}

// PutBlob stores value under key, replacing any previous document.
func (b *blobRepository) PutBlob(ctx context.Context, key string, value json.RawMessage) error {
	log := logger.FromContext(ctx)

	query, args, err := b.builder().
		Insert(kvTable).
		Columns("key", "value").
		Values(key, string(value)).
		Suffix(upsertBlobSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = b.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "blobRepository.PutBlob").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to write blob")
		return b.classify(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "blobRepository.PutBlob").Str("key", key).Int("size", len(value)).Msg("blob stored")
	return nil
}

// Ping reports [ErrStorageUnavailable] when the database cannot be reached.
func (b *blobRepository) Ping(ctx context.Context) error {
	if err := b.DB.PingContext(ctx); err != nil {
		b.logger.Err(err).Str("func", "blobRepository.Ping").Msg("database is unreachable")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
