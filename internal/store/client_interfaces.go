package store

import (
	"context"

	"github.com/MKhiriev/go-flatnav/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SettingsRepository is the durable key/value store of the client. Each
// key is read and written independently.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// DashboardRepository persists the whole dashboard state at once.
type DashboardRepository interface {
	LoadDashboard(ctx context.Context) (models.Dashboard, error)
	SaveDashboard(ctx context.Context, dashboard models.Dashboard) error
}
