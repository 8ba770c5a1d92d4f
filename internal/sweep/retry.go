package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetrySweep re-attempts failed items that still have retry budget and
// were last touched inside the retry window. Older failures need a
// manual retry.
type RetrySweep struct {
	contents    ContentLister
	engine      PublishEngine
	window      time.Duration
	maxRetries  int
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

func NewRetrySweep(
	contents ContentLister,
	engine PublishEngine,
	window time.Duration,
	maxRetries, concurrency int,
	logger *slog.Logger,
) *RetrySweep {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &RetrySweep{
		contents:    contents,
		engine:      engine,
		window:      window,
		maxRetries:  maxRetries,
		concurrency: concurrency,
		logger:      logger.With("sweep", "retry"),
		now:         time.Now,
	}
}

func (s *RetrySweep) Run(ctx context.Context) (string, error) {
	start := s.now()

	items, err := s.contents.ListFailedRetryable(ctx, start.Add(-s.window), s.maxRetries)
	if err != nil {
		return "", fmt.Errorf("list retryable items: %w", err)
	}

	stats := attemptAll(ctx, s.engine, items, s.concurrency, s.logger)
	stats.Duration = s.now().Sub(start).Round(time.Millisecond)

	s.logger.Info("retry sweep complete",
		"selected", stats.Selected,
		"published", stats.Published,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats.String(), nil
}
