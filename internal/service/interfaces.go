package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-flatnav/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BlobService stores the dashboard document behind the key-value proxy.
type BlobService interface {
	// GetDashboard returns the stored document. found is false when nothing
	// was written yet.
	GetDashboard(ctx context.Context) (value json.RawMessage, found bool, err error)
	// PutDashboard stores body verbatim after checking that it is JSON.
	PutDashboard(ctx context.Context, body []byte) error
	// Available reports [ErrStorageUnavailable] when the database cannot be
	// reached.
	Available(ctx context.Context) error
}

// TokenService issues and verifies proxy write tokens.
type TokenService interface {
	IssueToken(ctx context.Context, subject string) (models.WriteToken, error)
	VerifyToken(ctx context.Context, tokenString string) (models.WriteToken, error)
}

// ProxyInfoService reports the proxy version together with the state of
// the stored dashboard document.
type ProxyInfoService interface {
	// Info reports unreachable storage in the result. Other read failures
	// are returned.
	Info(ctx context.Context) (models.ProxyInfo, error)
}
