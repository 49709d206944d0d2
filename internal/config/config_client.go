package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings.
type ClientApp struct {
	LogFile string
}

// ClientAdapter holds document store client settings.
type ClientAdapter struct {
	Driver         string
	HTTPAddress    string
	RequestTimeout time.Duration
	RateLimit      float64
}

// ClientDB holds the local SQLite file.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers holds sync timing.
type ClientWorkers struct {
	AutoSyncDelay  time.Duration
	BootstrapDelay time.Duration
}

// ClientConfig is the client view over [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig merges defaults, environment, the bound flags and the
// config file into a validated [ClientConfig]. flags may be nil.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(clientDefaults()).
		withEnv().
		withFlags(flags).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{LogFile: cfg.App.LogFile},
		Adapter: ClientAdapter{
			Driver:         cfg.Adapter.Driver,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: cfg.Storage.DB.DSN}},
		Workers: ClientWorkers{
			AutoSyncDelay:  cfg.Workers.AutoSyncDelay,
			BootstrapDelay: cfg.Workers.BootstrapDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}
