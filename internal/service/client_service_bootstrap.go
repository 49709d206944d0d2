package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
)

const defaultBootstrapDelay = 500 * time.Millisecond

type bootstrapPuller struct {
	syncService ClientSyncService
	snapshots   SnapshotService
	delay       time.Duration
	logger      *logger.Logger

	once sync.Once
}

// NewBootstrapPuller creates the startup puller. A non-positive delay
// defaults to 500ms.
func NewBootstrapPuller(syncService ClientSyncService, snapshots SnapshotService, delay time.Duration, logger *logger.Logger) BootstrapPuller {
	if delay <= 0 {
		delay = defaultBootstrapDelay
	}

	return &bootstrapPuller{
		syncService: syncService,
		snapshots:   snapshots,
		delay:       delay,
		logger:      logger,
	}
}

func (b *bootstrapPuller) Run(ctx context.Context) error {
	b.once.Do(func() { b.run(ctx) })
	return nil
}

func (b *bootstrapPuller) run(ctx context.Context) {
	t := time.NewTimer(b.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}

	if !b.syncService.HasToken() {
		b.logger.Debug().Str("func", "bootstrapPuller.Run").Msg("no token, startup pull skipped")
		return
	}

	raw, err := b.syncService.Pull(ctx)
	if err != nil {
		b.logger.Warn().Err(err).Str("func", "bootstrapPuller.Run").Msg("startup pull failed")
		return
	}

	if err = b.snapshots.Restore(ctx, raw); err != nil {
		b.logger.Warn().Err(err).Str("func", "bootstrapPuller.Run").Msg("startup restore failed")
		return
	}

	b.logger.Info().Str("func", "bootstrapPuller.Run").Msg("startup restore done")
}
