package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
)

const (
	categoriesTable = "categories"
	bookmarksTable  = "bookmarks"
)

// dashboardSettingKeys are the settings rows written together with the
// category and bookmark tables.
var dashboardSettingKeys = []string{
	models.SettingAppName,
	models.SettingAppSubtitle,
	models.SettingAppFontSize,
	models.SettingTheme,
	models.SettingActiveCategory,
}

type dashboardRepository struct {
	*DB
	logger *logger.Logger
}

func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	return &dashboardRepository{
		DB:     db,
		logger: logger,
	}
}

// LoadDashboard reads categories and bookmarks in their saved order plus
// the presentation settings. A dashboard counts as saved once the app name
// setting exists; otherwise [ErrDashboardNotFound] is returned.
//
// Version is not persisted and is always zero.
func (d *dashboardRepository) LoadDashboard(ctx context.Context) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	settings, err := d.loadSettings(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	if _, ok := settings[models.SettingAppName]; !ok {
		log.Debug().Str("func", "dashboardRepository.LoadDashboard").Msg("no saved dashboard")
		return models.Dashboard{}, ErrDashboardNotFound
	}

	categories, err := d.loadCategories(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	bookmarks, err := d.loadBookmarks(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	return models.Dashboard{
		Bookmarks:  bookmarks,
		Categories: categories,
		Config: models.DashboardConfig{
			AppName:     settings[models.SettingAppName],
			AppSubtitle: settings[models.SettingAppSubtitle],
			AppFontSize: settings[models.SettingAppFontSize],
			Theme:       settings[models.SettingTheme],
		},
		ActiveCategoryID: settings[models.SettingActiveCategory],
	}, nil
}

func (d *dashboardRepository) loadSettings(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := d.builder().
		Select("key", "value").
		From(settingsTable).
		Where(sq.Eq{"key": dashboardSettingKeys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.loadSettings").Msg("failed to query dashboard settings")
		return nil, d.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make(map[string]string, len(dashboardSettingKeys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		settings[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return settings, nil
}

func (d *dashboardRepository) loadCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := d.builder().
		Select("id", "name", "color").
		From(categoriesTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.loadCategories").Msg("failed to query categories")
		return nil, d.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (d *dashboardRepository) loadBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := d.builder().
		Select("id", "title", "url", "category_id").
		From(bookmarksTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dashboardRepository.loadBookmarks").Msg("failed to query bookmarks")
		return nil, d.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err = rows.Scan(&b.ID, &b.Title, &b.URL, &b.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// SaveDashboard replaces the stored dashboard inside one transaction. Slice
// order is kept in the position column.
func (d *dashboardRepository) SaveDashboard(ctx context.Context, dashboard models.Dashboard) error {
	log := logger.FromContext(ctx)

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.SaveDashboard").
			Msg("failed to begin transaction")
		return d.classify(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	statements := []sq.Sqlizer{
		d.builder().Delete(bookmarksTable),
		d.builder().Delete(categoriesTable),
	}

	if len(dashboard.Categories) > 0 {
		insert := d.builder().Insert(categoriesTable).Columns("id", "name", "color", "position")
		for i, c := range dashboard.Categories {
			insert = insert.Values(c.ID, c.Name, c.Color, i)
		}
		statements = append(statements, insert)
	}

	if len(dashboard.Bookmarks) > 0 {
		insert := d.builder().Insert(bookmarksTable).Columns("id", "title", "url", "category_id", "position")
		for i, b := range dashboard.Bookmarks {
			insert = insert.Values(b.ID, b.Title, b.URL, b.CategoryID, i)
		}
		statements = append(statements, insert)
	}

	values := map[string]string{
		models.SettingAppName:        dashboard.Config.AppName,
		models.SettingAppSubtitle:    dashboard.Config.AppSubtitle,
		models.SettingAppFontSize:    dashboard.Config.AppFontSize,
		models.SettingTheme:          dashboard.Config.Theme,
		models.SettingActiveCategory: dashboard.ActiveCategoryID,
	}
	for _, key := range dashboardSettingKeys {
		statements = append(statements, upsertSetting(d.builder(), key, values[key]))
	}

	for idx, stmt := range statements {
		if err = execInTx(ctx, tx, stmt); err != nil {
			log.Err(err).
				Str("func", "dashboardRepository.SaveDashboard").
				Int("statement", idx+1).
				Int("total", len(statements)).
				Msg("failed to execute statement in transaction")
			return d.classify(ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "dashboardRepository.SaveDashboard").
			Msg("failed to commit transaction")
		return d.classify(ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "dashboardRepository.SaveDashboard").
		Int("categories", len(dashboard.Categories)).
		Int("bookmarks", len(dashboard.Bookmarks)).
		Msg("dashboard saved")

	return nil
}

func execInTx(ctx context.Context, tx *sql.Tx, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
