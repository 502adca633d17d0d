// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side until their context is done.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Purger deletes removed posts older than a cutoff and reports how many
// were deleted.
type Purger interface {
	PurgeRemoved(ctx context.Context, olderThan time.Time) (int64, error)
}
