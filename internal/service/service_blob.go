package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/store"
	"github.com/MKhiriev/go-flatnav/models"
)

type blobService struct {
	blobRepository store.BlobRepository
	logger         *logger.Logger
}

func NewBlobService(blobRepository store.BlobRepository, logger *logger.Logger) BlobService {
	return &blobService{
		blobRepository: blobRepository,
		logger:         logger,
	}
}

func (s *blobService) GetDashboard(ctx context.Context) (json.RawMessage, bool, error) {
	log := logger.FromContext(ctx)

	blob, err := s.blobRepository.GetBlob(ctx, models.DashboardBlobKey)
	if errors.Is(err, store.ErrBlobNotFound) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "blobService.GetDashboard").Msg("failed to read dashboard blob")
		return nil, false, s.wrapStorageError(err)
	}

	return blob.Value, true, nil
}

func (s *blobService) PutDashboard(ctx context.Context, body []byte) error {
	log := logger.FromContext(ctx)

	if !json.Valid(body) {
		log.Error().Str("func", "blobService.PutDashboard").Int("size", len(body)).Msg("body is not valid JSON")
		return ErrInvalidBlob
	}

	if err := s.blobRepository.PutBlob(ctx, models.DashboardBlobKey, json.RawMessage(body)); err != nil {
		log.Err(err).Str("func", "blobService.PutDashboard").Msg("failed to store dashboard blob")
		return s.wrapStorageError(err)
	}

	log.Info().Str("func", "blobService.PutDashboard").Int("size", len(body)).Msg("dashboard blob stored")
	return nil
}

func (s *blobService) Available(ctx context.Context) error {
	if err := s.blobRepository.Ping(ctx); err != nil {
		s.logger.Err(err).Str("func", "blobService.Available").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *blobService) wrapStorageError(err error) error {
	if errors.Is(err, store.ErrStorageUnavailable) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("blob storage error: %w", err)
}
