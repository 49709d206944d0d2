package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
	"github.com/MKhiriev/go-flatnav/models"
)

// tokenService signs proxy write tokens with HMAC-SHA256. All state is
// read-only after construction.
type tokenService struct {
	// tokenSignKey signs and verifies tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim; tokens from another issuer are
	// rejected.
	tokenIssuer string

	// tokenDuration is the lifetime of issued tokens. Zero means no expiry.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewTokenService(cfg config.ServerApp, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken mints a write token for subject, usually a device name.
func (s *tokenService) IssueToken(ctx context.Context, subject string) (models.WriteToken, error) {
	token, err := utils.GenerateWriteToken(s.tokenIssuer, subject, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		s.logger.Err(err).Str("func", "tokenService.IssueToken").Str("subject", subject).Msg("failed to issue write token")
		return models.WriteToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (models.WriteToken, error) {
	token, err := utils.ValidateWriteToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.VerifyToken").Msg("write token rejected")
		return models.WriteToken{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
