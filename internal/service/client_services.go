package service

import (
	"github.com/MKhiriev/go-flatnav/internal/adapter"
	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/internal/utils"
	"github.com/MKhiriev/go-flatnav/internal/validators"
)

type ClientServices struct {
	SyncService      ClientSyncService
	DashboardService DashboardService
	SnapshotService  SnapshotService
	AutoSyncTrigger  AutoSyncTrigger
	BootstrapPuller  BootstrapPuller
}

func NewClientServices(storages *store.ClientStorages, documents adapter.DocumentStore, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	validator := validators.NewDashboardValidator()

	syncSvc := NewClientSyncService(storages.SettingsRepository, documents, logger)
	dashboardSvc := NewDashboardService(storages.DashboardRepository, utils.NewUUIDGenerator(), validator, logger)
	snapshotSvc := NewSnapshotService(dashboardSvc, validator, logger)

	return &ClientServices{
		SyncService:      syncSvc,
		DashboardService: dashboardSvc,
		SnapshotService:  snapshotSvc,
		AutoSyncTrigger:  NewAutoSyncTrigger(syncSvc, dashboardSvc, snapshotSvc, cfg.AutoSyncDelay, logger),
		BootstrapPuller:  NewBootstrapPuller(syncSvc, snapshotSvc, cfg.BootstrapDelay, logger),
	}
}
