package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/adapter"
	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/internal/tui"
	"github.com/MKhiriev/go-flatnav/internal/workers"
	"github.com/MKhiriev/go-flatnav/models"
)

// UI is the interactive front end started by [App.Run].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI
	logger   *logger.Logger
}

// NewApp opens local storage, builds the document store driver and loads
// the persisted sync settings and dashboard.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	documents, err := adapter.NewDocumentStore(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create document store: %w", err)
	}

	services := service.NewClientServices(storages, documents, cfg.Workers, logger)
	if err = initServices(ctx, services); err != nil {
		storages.Close()
		return nil, err
	}

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(storages, services, ui, logger), nil
}

func newApp(storages *store.ClientStorages, services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewClientWorkers(services, logger),
		ui:       ui,
		logger:   logger,
	}
}

func initServices(ctx context.Context, services *service.ClientServices) error {
	if err := services.SyncService.Init(ctx); err != nil {
		return fmt.Errorf("load sync settings: %w", err)
	}
	if err := services.DashboardService.Init(ctx); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}
	return nil
}

// Services exposes the wired services to command-line operations.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the start-up pull and the auto-push trigger, then blocks in
// the UI. Quitting the UI stops the workers and waits for an in-flight
// push.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer func() {
		if err := a.workers.Stop(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("workers stopped with error")
		}
	}()

	return a.ui.Run(ctx)
}

// Push uploads the current dashboard. Failures are returned so commands
// can exit non-zero.
func (a *App) Push(ctx context.Context) error {
	return a.services.SyncService.Push(ctx, a.services.SnapshotService.Assemble(), false)
}

// PullAndRestore downloads the backup and applies it to the dashboard.
func (a *App) PullAndRestore(ctx context.Context) error {
	raw, err := a.services.SyncService.Pull(ctx)
	if err != nil {
		return err
	}
	return a.services.SnapshotService.Restore(ctx, raw)
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
