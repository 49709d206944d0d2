package service

import (
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
)

type Services struct {
	BlobService      BlobService
	TokenService     TokenService
	ProxyInfoService ProxyInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	infoSvc, err := NewProxyInfoService(cfg, storages.BlobRepository, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating proxy info service: %w", err)
	}

	return &Services{
		BlobService:      NewBlobService(storages.BlobRepository, logger),
		TokenService:     NewTokenService(cfg, logger),
		ProxyInfoService: infoSvc,
	}, nil
}
