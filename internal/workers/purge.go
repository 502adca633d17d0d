// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
)

// PurgeWorker periodically deletes posts that were removed more than
// retention ago.
type PurgeWorker struct {
	purger    Purger
	interval  time.Duration
	retention time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewPurgeWorker returns nil when interval is not positive, which disables
// purging.
func NewPurgeWorker(purger Purger, interval, retention time.Duration, logger *logger.Logger) *PurgeWorker {
	if interval <= 0 {
		return nil
	}

	return &PurgeWorker{
		purger:    purger,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

// Run purges once per interval until ctx is done.
func (p *PurgeWorker) Run(ctx context.Context) {
	p.logger.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("purge worker started")

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("purge worker stopped")
			return
		case <-t.C:
			p.purge(ctx)
		}
	}
}

func (p *PurgeWorker) purge(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)

	purged, err := p.purger.PurgeRemoved(ctx, cutoff)
	if err != nil {
		p.logger.Err(err).Time("cutoff", cutoff).Msg("purging removed posts failed")
		return
	}

	if purged > 0 {
		p.logger.Info().Int64("purged", purged).Time("cutoff", cutoff).Msg("removed posts purged")
	}
}
