package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/migrations"
)

// ClientStorages groups the client-side repositories. Both share one
// SQLite connection.
type ClientStorages struct {
	// SettingsRepository holds the sync credentials and flags.
	SettingsRepository SettingsRepository

	// DashboardRepository holds categories, bookmarks and presentation
	// settings.
	DashboardRepository DashboardRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// when missing, applies the client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.ClientDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SettingsRepository:  NewSettingsRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
		db:                  db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
