package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/migrations"
)

func newMockDB(t *testing.T, dialect string, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}, mock
}

func newSQLiteMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newMockDB(t, migrations.DialectSQLite, NewSQLiteErrorClassifier())
}

func newPostgresMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newMockDB(t, migrations.DialectPostgres, NewPostgresErrorClassifier())
}

var testCtx = context.Background()
