package http

import (
	"testing"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks holds the service mocks behind a test handler.
type testMocks struct {
	blob    *mock.MockBlobService
	token   *mock.MockTokenService
	info    *mock.MockProxyInfoService
}

// newTestHandler builds a Handler whose services are all gomock mocks.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		blob:    mock.NewMockBlobService(ctrl),
		token:   mock.NewMockTokenService(ctrl),
		info:    mock.NewMockProxyInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		BlobService:      m.blob,
		TokenService:     m.token,
		ProxyInfoService: m.info,
	}, logger.Nop())

	return h, m
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := &service.Services{
		BlobService:      mock.NewMockBlobService(ctrl),
		TokenService:     mock.NewMockTokenService(ctrl),
		ProxyInfoService: mock.NewMockProxyInfoService(ctrl),
	}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc.BlobService, h.blobs)
	assert.Same(t, svc.TokenService, h.tokens)
	assert.Same(t, svc.ProxyInfoService, h.info)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
