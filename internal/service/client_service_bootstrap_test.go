package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBootstrap(t *testing.T) (BootstrapPuller, *mock.MockClientSyncService, *mock.MockSnapshotService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	syncSvc := mock.NewMockClientSyncService(ctrl)
	snapshots := mock.NewMockSnapshotService(ctrl)

	return NewBootstrapPuller(syncSvc, snapshots, time.Millisecond, logger.Nop()), syncSvc, snapshots
}

func TestBootstrapPuller_PullsAndRestores(t *testing.T) {
	puller, syncSvc, snapshots := newTestBootstrap(t)
	raw := models.RawSnapshot{"bookmarks": []byte("[]")}

	syncSvc.EXPECT().HasToken().Return(true)
	syncSvc.EXPECT().Pull(gomock.Any()).Return(raw, nil)
	snapshots.EXPECT().Restore(gomock.Any(), raw).Return(nil)

	require.NoError(t, puller.Run(context.Background()))
}

func TestBootstrapPuller_NoTokenSkipsPull(t *testing.T) {
	puller, syncSvc, _ := newTestBootstrap(t)

	syncSvc.EXPECT().HasToken().Return(false)

	require.NoError(t, puller.Run(context.Background()))
}

func TestBootstrapPuller_PullFailureIsSwallowed(t *testing.T) {
	puller, syncSvc, _ := newTestBootstrap(t)

	syncSvc.EXPECT().HasToken().Return(true)
	syncSvc.EXPECT().Pull(gomock.Any()).Return(nil, ErrBackupNotFound)

	assert.NoError(t, puller.Run(context.Background()))
}

func TestBootstrapPuller_RestoreFailureIsSwallowed(t *testing.T) {
	puller, syncSvc, snapshots := newTestBootstrap(t)

	syncSvc.EXPECT().HasToken().Return(true)
	syncSvc.EXPECT().Pull(gomock.Any()).Return(models.RawSnapshot{}, nil)
	snapshots.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	assert.NoError(t, puller.Run(context.Background()))
}

func TestBootstrapPuller_RunsOnce(t *testing.T) {
	puller, syncSvc, snapshots := newTestBootstrap(t)

	syncSvc.EXPECT().HasToken().Return(true).Times(1)
	syncSvc.EXPECT().Pull(gomock.Any()).Return(models.RawSnapshot{}, nil).Times(1)
	snapshots.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, puller.Run(context.Background()))
	require.NoError(t, puller.Run(context.Background()))
}

func TestBootstrapPuller_CancelledBeforeDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockClientSyncService(ctrl)
	snapshots := mock.NewMockSnapshotService(ctrl)
	puller := NewBootstrapPuller(syncSvc, snapshots, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, puller.Run(ctx))
}

func TestNewBootstrapPuller_DefaultDelay(t *testing.T) {
	puller := NewBootstrapPuller(nil, nil, 0, logger.Nop()).(*bootstrapPuller)
	assert.Equal(t, defaultBootstrapDelay, puller.delay)
}
