package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/models"
)

type proxyInfoService struct {
	version        string
	blobRepository store.BlobRepository

	logger *logger.Logger
}

func NewProxyInfoService(cfg config.ServerApp, blobRepository store.BlobRepository, logger *logger.Logger) (ProxyInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &proxyInfoService{
		version:        cfg.Version,
		blobRepository: blobRepository,
		logger:         logger,
	}, nil
}

func (s *proxyInfoService) Info(ctx context.Context) (models.ProxyInfo, error) {
	log := logger.FromContext(ctx)
	info := models.ProxyInfo{Version: s.version, Storage: models.StorageOK}

	if err := s.blobRepository.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("func", "proxyInfoService.Info").Msg("storage ping failed")
		info.Storage = models.StorageUnavailable
		return info, nil
	}

	blob, err := s.blobRepository.GetBlob(ctx, models.DashboardBlobKey)
	switch {
	case errors.Is(err, store.ErrBlobNotFound):
		return info, nil
	case errors.Is(err, store.ErrStorageUnavailable):
		log.Warn().Err(err).Str("func", "proxyInfoService.Info").Msg("storage went away while reading")
		info.Storage = models.StorageUnavailable
		return info, nil
	case err != nil:
		log.Err(err).Str("func", "proxyInfoService.Info").Msg("failed to read dashboard blob")
		return models.ProxyInfo{}, fmt.Errorf("blob storage error: %w", err)
	}

	info.Stored = true
	info.Size = len(blob.Value)
	if !blob.UpdatedAt.IsZero() {
		updatedAt := blob.UpdatedAt.UTC()
		info.UpdatedAt = &updatedAt
	}

	return info, nil
}
