// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/mock"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records how many times Run was called and optionally
// blocks until ctx is cancelled.
type countingWorker struct {
	runs  atomic.Int64
	block bool
	err   error
}

func (c *countingWorker) Run(ctx context.Context) error {
	c.runs.Add(1)
	if c.block {
		<-ctx.Done()
	}
	return c.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := NewWorkers(logger.Nop(), w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(logger.Nop()).Run(context.Background()))
	assert.NoError(t, (&Workers{logger: logger.Nop()}).Run(context.Background()))
}

func TestWorkers_Run_JoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	ws := NewWorkers(logger.Nop(), &countingWorker{err: errA}, &countingWorker{}, &countingWorker{err: errB})
	err := ws.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestWorkers_Run_ConcurrentWorkers(t *testing.T) {
	blocking := &countingWorker{block: true}
	quick := &countingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWorkers(logger.Nop(), blocking, quick).Run(ctx) }()

	// quick finishes even though blocking is still running
	require.Eventually(t, func() bool { return quick.runs.Load() == 1 }, time.Second, time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before every worker finished")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestWorkers_StartStop(t *testing.T) {
	w := &countingWorker{block: true}
	ws := NewWorkers(logger.Nop(), w)

	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.runs.Load() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, ws.Stop())
	require.NoError(t, ws.Stop(), "second Stop is a no-op")
}

func TestWorkers_Start_RestartsPreviousRun(t *testing.T) {
	w := &countingWorker{block: true}
	ws := NewWorkers(logger.Nop(), w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.runs.Load() == 2 }, time.Second, time.Millisecond)

	require.NoError(t, ws.Stop())
}

func TestNewClientWorkers_RunsBootstrapAndTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	bootstrap := mock.NewMockBootstrapPuller(ctrl)
	trigger := mock.NewMockAutoSyncTrigger(ctrl)

	bootstrap.EXPECT().Run(gomock.Any()).Return(nil)
	trigger.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	ws := NewClientWorkers(&service.ClientServices{
		BootstrapPuller: bootstrap,
		AutoSyncTrigger: trigger,
	}, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, ws.Run(ctx))
}
