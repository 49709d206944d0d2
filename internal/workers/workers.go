package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// NewClientWorkers bundles the startup pull and the auto-push trigger.
func NewClientWorkers(services *service.ClientServices, logger *logger.Logger) *Workers {
	return NewWorkers(logger, services.BootstrapPuller, services.AutoSyncTrigger)
}

// Run starts every worker on its own goroutine and blocks until all of them
// returned. Errors are joined.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Msg("worker failed")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Start runs the workers in the background until Stop is called or ctx is
// cancelled. A second Start stops the previous run first.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go func() { done <- w.Run(runCtx) }()
}

// Stop cancels the background run and waits for every worker to return.
// Safe to call when nothing is running.
func (w *Workers) Stop() error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	return <-done
}
