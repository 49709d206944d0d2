package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
)

func TestGetSetting_Success(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE key = ?")).
		WithArgs(models.SettingToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("ghp_abc"))

	value, err := repo.GetSetting(testCtx, models.SettingToken)

	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSetting_NotFound(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs(models.SettingDocumentID).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetSetting(testCtx, models.SettingDocumentID)

	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestGetSetting_QueryError(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnError(errors.New("disk I/O"))

	_, err := repo.GetSetting(testCtx, models.SettingAutoSync)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestGetSetting_BusyIsUnavailable(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.GetSetting(testCtx, models.SettingAutoSync)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestSetSetting_Upsert(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings (key,value) VALUES (?,?) ON CONFLICT (key) DO UPDATE")).
		WithArgs(models.SettingAutoSync, "true").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetSetting(testCtx, models.SettingAutoSync, "true")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetSetting_ExecError(t *testing.T) {
	db, mock := newSQLiteMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO settings").
		WillReturnError(errors.New("readonly database"))

	err := repo.SetSetting(testCtx, models.SettingToken, "x")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}
