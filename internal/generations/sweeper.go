package generations

import (
	"context"
	"time"

	"github.com/james-eo/portfolio/internal/shared/metrics"
	"github.com/james-eo/portfolio/internal/shared/storage/object"
	"github.com/james-eo/portfolio/internal/shared/telemetry"
)

const sweepBatchSize = 100

// Sweeper removes expired generations and their stored files on an
// interval.
type Sweeper struct {
	Repo     Repo
	Store    object.ObjectStore
	Metrics  *metrics.Registry
	Interval time.Duration
}

// Run sweeps until the context is cancelled. One sweep happens
// immediately.
func (s *Sweeper) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n, err := s.SweepOnce(ctx); err != nil {
			telemetry.Error("sweep.failed", map[string]any{"error": err.Error()})
		} else if n > 0 {
			telemetry.Info("sweep.complete", map[string]any{"removed": n})
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// SweepOnce deletes one batch of expired records, file first. A file
// that cannot be deleted does not keep the record alive.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	expired, err := s.Repo.ListExpired(ctx, time.Now().UTC(), sweepBatchSize)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, g := range expired {
		if g.FileKey != "" {
			if err := s.Store.Delete(ctx, g.FileKey); err != nil {
				telemetry.Warn("sweep.delete_file_failed", map[string]any{
					"generation_id": g.ID,
					"file_key":      g.FileKey,
					"error":         err.Error(),
				})
			}
		}
		if err := s.Repo.Delete(ctx, g.ID); err != nil {
			telemetry.Warn("sweep.delete_record_failed", map[string]any{
				"generation_id": g.ID,
				"error":         err.Error(),
			})
			continue
		}
		removed++
	}
	if s.Metrics != nil && removed > 0 {
		s.Metrics.IncSweep(removed)
	}
	return removed, nil
}
