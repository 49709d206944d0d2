// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/models"
)

const defaultAutoSyncDelay = 3 * time.Second

var (
	errTriggerRunning = errors.New("auto-sync trigger is already running")
	errTriggerStopped = errors.New("auto-sync trigger was stopped")
)

// syncedContent is the part of the dashboard that ends up in a backup.
type syncedContent struct {
	bookmarks  []models.Bookmark
	categories []models.Category
	config     models.DashboardConfig
}

func syncedContentOf(d models.Dashboard) syncedContent {
	return syncedContent{bookmarks: d.Bookmarks, categories: d.Categories, config: d.Config}
}

func (c syncedContent) equal(other syncedContent) bool {
	return c.config == other.config &&
		slices.Equal(c.bookmarks, other.bookmarks) &&
		slices.Equal(c.categories, other.categories)
}

type autoSyncTrigger struct {
	syncService ClientSyncService
	dashboard   DashboardService
	snapshots   SnapshotService
	delay       time.Duration
	logger      *logger.Logger

	mu          sync.Mutex
	ctx         context.Context
	timer       *time.Timer
	generation  uint64
	primed      bool
	content     syncedContent
	running     bool
	stopped     bool
	unsubscribe []func()
	wg          sync.WaitGroup
}

// NewAutoSyncTrigger creates an idle trigger. A non-positive delay defaults
// to three seconds.
func NewAutoSyncTrigger(syncService ClientSyncService, dashboard DashboardService, snapshots SnapshotService, delay time.Duration, logger *logger.Logger) AutoSyncTrigger {
	if delay <= 0 {
		delay = defaultAutoSyncDelay
	}

	return &autoSyncTrigger{
		syncService: syncService,
		dashboard:   dashboard,
		snapshots:   snapshots,
		delay:       delay,
		logger:      logger,
	}
}

func (t *autoSyncTrigger) Run(ctx context.Context) error {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return errTriggerStopped
	}
	if t.running {
		t.mu.Unlock()
		return errTriggerRunning
	}
	t.running = true
	t.ctx = ctx
	t.mu.Unlock()

	unsubscribe := []func(){
		t.dashboard.Subscribe(func(uint64) { t.observeDashboard() }),
		t.syncService.OnSettingsChange(t.observe),
	}

	t.mu.Lock()
	t.unsubscribe = unsubscribe
	t.mu.Unlock()

	// the state at startup is the first observation
	t.observeDashboard()

	t.logger.Debug().Str("func", "autoSyncTrigger.Run").Dur("delay", t.delay).Msg("auto-sync trigger started")

	<-ctx.Done()
	t.Stop()

	return nil
}

// observeDashboard ignores notifications that leave the synced content as
// it was, such as switching the active category.
func (t *autoSyncTrigger) observeDashboard() {
	content := syncedContentOf(t.dashboard.Dashboard())

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.primed && content.equal(t.content) {
		return
	}
	t.content = content
	t.observeLocked()
}

func (t *autoSyncTrigger) observe() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observeLocked()
}

// observeLocked restarts the debounce timer. Turning auto-sync off or
// clearing the token cancels a pending push without scheduling a new one.
func (t *autoSyncTrigger) observeLocked() {
	if t.stopped {
		return
	}
	if !t.primed {
		t.primed = true
		return
	}

	t.cancelLocked()

	if !t.syncService.AutoSync() || !t.syncService.HasToken() {
		return
	}

	gen := t.generation
	t.timer = time.AfterFunc(t.delay, func() { t.fire(gen) })
}

// cancelLocked stops the pending timer. Bumping the generation also voids a
// callback that already started waiting for the lock.
func (t *autoSyncTrigger) cancelLocked() {
	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *autoSyncTrigger) fire(gen uint64) {
	t.mu.Lock()
	if t.stopped || gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.wg.Add(1)
	// the push outlives Stop and the run context
	ctx := context.WithoutCancel(t.ctx)
	t.mu.Unlock()

	defer t.wg.Done()

	if err := t.syncService.Push(ctx, t.snapshots.Assemble(), true); err != nil {
		t.logger.Warn().Err(err).Str("func", "autoSyncTrigger.fire").Msg("auto-sync push failed")
		return
	}
	t.logger.Debug().Str("func", "autoSyncTrigger.fire").Msg("auto-sync push done")
}

func (t *autoSyncTrigger) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.cancelLocked()
	unsubscribe := t.unsubscribe
	t.unsubscribe = nil
	t.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	t.wg.Wait()
}
