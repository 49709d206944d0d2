package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/internal/utils"
	"github.com/MKhiriev/go-flatnav/internal/validators"
	"github.com/MKhiriev/go-flatnav/models"
)

// categoryPalette is cycled through when a category is added without a
// color.
var categoryPalette = []string{
	"bg-blue-500",
	"bg-emerald-500",
	"bg-purple-500",
	"bg-orange-500",
	"bg-rose-500",
	"bg-cyan-500",
	"bg-amber-500",
	"bg-indigo-500",
}

type dashboardService struct {
	repo      store.DashboardRepository
	ids       utils.IDGenerator
	validator validators.Validator
	logger    *logger.Logger

	mu    sync.RWMutex
	state models.Dashboard

	subscribers listeners[uint64]
}

// NewDashboardService builds the state owner. Call Init before use.
func NewDashboardService(repo store.DashboardRepository, ids utils.IDGenerator, validator validators.Validator, logger *logger.Logger) DashboardService {
	return &dashboardService{
		repo:      repo,
		ids:       ids,
		validator: validator,
		logger:    logger,
	}
}

func (s *dashboardService) Init(ctx context.Context) error {
	dashboard, err := s.repo.LoadDashboard(ctx)
	if errors.Is(err, store.ErrDashboardNotFound) {
		dashboard = models.DefaultDashboard()
		if err = s.repo.SaveDashboard(ctx, dashboard); err != nil {
			s.logger.Err(err).Str("func", "dashboardService.Init").Msg("failed to save default dashboard")
			return fmt.Errorf("error seeding dashboard: %w", err)
		}
		s.logger.Info().Str("func", "dashboardService.Init").Msg("default dashboard seeded")
	} else if err != nil {
		s.logger.Err(err).Str("func", "dashboardService.Init").Msg("failed to load dashboard")
		return fmt.Errorf("error loading dashboard: %w", err)
	}

	s.mu.Lock()
	dashboard.Version = 0
	s.state = dashboard
	s.mu.Unlock()

	return nil
}

func (s *dashboardService) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *dashboardService) Subscribe(fn func(version uint64)) func() {
	return s.subscribers.add(fn)
}

func (s *dashboardService) AddCategory(ctx context.Context, name, color string) (models.Category, error) {
	category := models.Category{ID: s.ids.Generate(), Name: strings.TrimSpace(name), Color: color}
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidCategory, err)
	}

	err := s.mutate(ctx, "dashboardService.AddCategory", func(d *models.Dashboard) error {
		if category.Color == "" {
			category.Color = categoryPalette[len(d.Categories)%len(categoryPalette)]
		}
		d.Categories = append(d.Categories, category)
		if d.ActiveCategoryID == "" {
			d.ActiveCategoryID = category.ID
		}
		return nil
	})
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

func (s *dashboardService) RemoveCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, "dashboardService.RemoveCategory", func(d *models.Dashboard) error {
		if !d.HasCategory(id) {
			return ErrCategoryNotFound
		}

		categories := make([]models.Category, 0, len(d.Categories))
		for _, c := range d.Categories {
			if c.ID != id {
				categories = append(categories, c)
			}
		}
		bookmarks := make([]models.Bookmark, 0, len(d.Bookmarks))
		for _, b := range d.Bookmarks {
			if b.CategoryID != id {
				bookmarks = append(bookmarks, b)
			}
		}

		d.Categories = categories
		d.Bookmarks = bookmarks
		repairActiveCategory(d)
		return nil
	})
}

func (s *dashboardService) AddBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	bookmark.ID = s.ids.Generate()
	bookmark.Title = strings.TrimSpace(bookmark.Title)
	bookmark.URL = normalizeURL(bookmark.URL)

	if err := s.validator.Validate(ctx, bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}

	err := s.mutate(ctx, "dashboardService.AddBookmark", func(d *models.Dashboard) error {
		if !d.HasCategory(bookmark.CategoryID) {
			return ErrCategoryNotFound
		}
		d.Bookmarks = append(d.Bookmarks, bookmark)
		return nil
	})
	if err != nil {
		return models.Bookmark{}, err
	}

	return bookmark, nil
}

func (s *dashboardService) RemoveBookmark(ctx context.Context, id string) error {
	return s.mutate(ctx, "dashboardService.RemoveBookmark", func(d *models.Dashboard) error {
		for i, b := range d.Bookmarks {
			if b.ID == id {
				d.Bookmarks = append(d.Bookmarks[:i], d.Bookmarks[i+1:]...)
				return nil
			}
		}
		return ErrBookmarkNotFound
	})
}

func (s *dashboardService) UpdateConfig(ctx context.Context, patch models.ConfigPatch) error {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s.mutate(ctx, "dashboardService.UpdateConfig", func(d *models.Dashboard) error {
		d.Config = patch.Apply(d.Config)
		return nil
	})
}

func (s *dashboardService) SetActiveCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, "dashboardService.SetActiveCategory", func(d *models.Dashboard) error {
		if !d.HasCategory(id) {
			return ErrCategoryNotFound
		}
		d.ActiveCategoryID = id
		return nil
	})
}

func (s *dashboardService) ReplaceBookmarks(ctx context.Context, bookmarks []models.Bookmark) error {
	return s.mutate(ctx, "dashboardService.ReplaceBookmarks", func(d *models.Dashboard) error {
		d.Bookmarks = append([]models.Bookmark{}, bookmarks...)
		return nil
	})
}

func (s *dashboardService) ReplaceCategories(ctx context.Context, categories []models.Category) error {
	return s.mutate(ctx, "dashboardService.ReplaceCategories", func(d *models.Dashboard) error {
		d.Categories = append([]models.Category{}, categories...)
		repairActiveCategory(d)
		return nil
	})
}

// mutate applies fn to a copy of the state, persists the copy and only then
// publishes it. A failing fn or save leaves the state untouched.
func (s *dashboardService) mutate(ctx context.Context, op string, fn func(d *models.Dashboard) error) error {
	s.mu.Lock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.repo.SaveDashboard(ctx, next); err != nil {
		s.mu.Unlock()
		s.logger.Err(err).Str("func", op).Msg("failed to save dashboard")
		return fmt.Errorf("error saving dashboard: %w", err)
	}

	next.Version = s.state.Version + 1
	s.state = next
	version := next.Version
	s.mu.Unlock()

	s.logger.Debug().Str("func", op).Uint64("version", version).Msg("dashboard changed")
	s.subscribers.notify(version)

	return nil
}

// repairActiveCategory points the selection at the first category when the
// selected one is gone, or clears it when there are none.
func repairActiveCategory(d *models.Dashboard) {
	if d.HasCategory(d.ActiveCategoryID) {
		return
	}
	d.ActiveCategoryID = ""
	if len(d.Categories) > 0 {
		d.ActiveCategoryID = d.Categories[0].ID
	}
}

// normalizeURL prefixes https:// when the user typed a bare host.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return raw
	}
	return "https://" + raw
}
