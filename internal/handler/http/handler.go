package http

import (
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/service"
)

// Handler serves the key-value proxy API.
type Handler struct {
	blobs  service.BlobService
	tokens service.TokenService
	info   service.ProxyInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("key-value proxy handler created")
	return &Handler{
		blobs:  services.BlobService,
		tokens: services.TokenService,
		info:   services.ProxyInfoService,
		logger: logger,
	}
}
