// Package sweep removes expired sessions in the background. Lazy
// deletion on lookup remains the authoritative path; the sweeper only
// keeps the store from accumulating tokens that are never presented
// again.
package sweep

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/bloghub-api/internal/api/metrics"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

const defaultInterval = time.Hour

// Sweeper periodically deletes sessions older than the session TTL.
type Sweeper struct {
	sessions ports.SessionRepository
	ttl      time.Duration
	interval time.Duration
	logger   zerolog.Logger
}

// NewSweeper creates a Sweeper. If interval <= 0, defaultInterval is
// used.
func NewSweeper(sessions ports.SessionRepository, ttl, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{sessions: sessions, ttl: ttl, interval: interval, logger: logger}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass and reports how many sessions were removed.
func (s *Sweeper) Sweep(ctx context.Context) int64 {
	cutoff := time.Now().Add(-s.ttl)
	n, err := s.sessions.DeleteExpired(ctx, cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("session sweep failed")
		return 0
	}
	if n > 0 {
		metrics.SessionsDeletedTotal.WithLabelValues("sweep").Add(float64(n))
		s.logger.Info().Int64("deleted", n).Msg("expired sessions swept")
	}
	return n
}
