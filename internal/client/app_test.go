package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/config"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err    error
	called bool
}

func (u *stubUI) Run(context.Context) error {
	u.called = true
	return u.err
}

type testMocks struct {
	sync      *mock.MockClientSyncService
	dashboard *mock.MockDashboardService
	snapshots *mock.MockSnapshotService
	trigger   *mock.MockAutoSyncTrigger
	bootstrap *mock.MockBootstrapPuller
}

func newTestApp(t *testing.T, ui UI) (*App, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		sync:      mock.NewMockClientSyncService(ctrl),
		dashboard: mock.NewMockDashboardService(ctrl),
		snapshots: mock.NewMockSnapshotService(ctrl),
		trigger:   mock.NewMockAutoSyncTrigger(ctrl),
		bootstrap: mock.NewMockBootstrapPuller(ctrl),
	}

	services := &service.ClientServices{
		SyncService:      m.sync,
		DashboardService: m.dashboard,
		SnapshotService:  m.snapshots,
		AutoSyncTrigger:  m.trigger,
		BootstrapPuller:  m.bootstrap,
	}

	return newApp(nil, services, ui, logger.Nop()), m
}

func TestRun_StartsWorkersAndStopsThemAfterUI(t *testing.T) {
	ui := &stubUI{}
	app, m := newTestApp(t, ui)

	triggerStopped := make(chan struct{})
	m.bootstrap.EXPECT().Run(gomock.Any()).Return(nil)
	m.trigger.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		close(triggerStopped)
		return nil
	})

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, ui.called)

	select {
	case <-triggerStopped:
	case <-time.After(time.Second):
		t.Fatal("auto-sync trigger was not stopped")
	}
}

func TestRun_ReturnsUIError(t *testing.T) {
	uiErr := errors.New("no tty")
	app, m := newTestApp(t, &stubUI{err: uiErr})

	m.bootstrap.EXPECT().Run(gomock.Any()).Return(nil).AnyTimes()
	m.trigger.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}).AnyTimes()

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}

func TestPush_UsesAssembledSnapshot(t *testing.T) {
	app, m := newTestApp(t, &stubUI{})
	snap := models.Snapshot{Version: 1}

	m.snapshots.EXPECT().Assemble().Return(snap)
	m.sync.EXPECT().Push(gomock.Any(), snap, false).Return(service.ErrNoCredential)

	assert.ErrorIs(t, app.Push(context.Background()), service.ErrNoCredential)
}

func TestPullAndRestore(t *testing.T) {
	app, m := newTestApp(t, &stubUI{})
	raw := models.RawSnapshot{}

	gomock.InOrder(
		m.sync.EXPECT().Pull(gomock.Any()).Return(raw, nil),
		m.snapshots.EXPECT().Restore(gomock.Any(), raw).Return(nil),
	)

	assert.NoError(t, app.PullAndRestore(context.Background()))
}

func TestPullAndRestore_PullFails(t *testing.T) {
	app, m := newTestApp(t, &stubUI{})

	m.sync.EXPECT().Pull(gomock.Any()).Return(nil, service.ErrBackupNotFound)

	assert.ErrorIs(t, app.PullAndRestore(context.Background()), service.ErrBackupNotFound)
}

func TestNewApp_SeedsDashboardOnFirstStart(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "flatnav.db")}},
		Adapter: config.ClientAdapter{
			Driver:         "rest",
			HTTPAddress:    "http://127.0.0.1:1",
			RequestTimeout: time.Second,
		},
		Workers: config.ClientWorkers{AutoSyncDelay: time.Second},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	services := app.Services()
	assert.NotEmpty(t, services.DashboardService.Dashboard().Categories)
	assert.False(t, services.SyncService.HasToken())
	assert.False(t, services.SyncService.AutoSync())
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "flatnav.db")}},
		Adapter: config.ClientAdapter{Driver: "ftp"},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, app)
	assert.Error(t, err)
}
