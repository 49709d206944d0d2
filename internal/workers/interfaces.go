// Package workers runs the client's background workers: the startup pull
// and the debounced auto-push trigger.
// It defines the Worker interface and a Workers aggregate that runs
// several workers side by side and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block until its work is done or ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
