package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/migrations"
)

// Storages groups the key-value proxy repositories.
type Storages struct {
	BlobRepository BlobRepository

	db *DB
}

// NewStorages connects to PostgreSQL when cfg.DB.DSN is a postgres URL and
// to a SQLite file otherwise, then applies the server migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if IsPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB.DSN, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(migrations.ServerDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BlobRepository: NewBlobRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
