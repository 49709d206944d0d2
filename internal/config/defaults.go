package config

import "time"

const (
	DefaultAdapterAddress = "https://api.github.com"
	DefaultAdapterDriver  = "rest"
	DefaultClientDSN      = "flatnav.db"
	DefaultServerDSN      = "flatnav-server.db"
	DefaultServerAddress  = "localhost:8080"
	DefaultTokenIssuer    = "flatnav"
)

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultClientDSN}},
		Adapter: Adapter{
			Driver:         DefaultAdapterDriver,
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: 15 * time.Second,
			RateLimit:      2,
		},
		Workers: Workers{
			AutoSyncDelay:  3 * time.Second,
			BootstrapDelay: 500 * time.Millisecond,
		},
	}
}

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenIssuer: DefaultTokenIssuer},
		Storage: Storage{DB: DB{DSN: DefaultServerDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 10 * time.Second,
		},
	}
}
