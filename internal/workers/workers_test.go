// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker counts its runs and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	// Arrange
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Act
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, time.Millisecond)
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	ws := NewWorkers(&countingWorker{}, nil)

	assert.Len(t, ws.workers, 1)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// returns immediately without workers
	ws.Run(context.Background())
}
