// Package sweep implements the periodic passes over the content table:
// publishing due items, reminding reviewers, retrying failures, and
// generating drafts for opted-in brands.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/lifecycle"
)

// PublishSweep publishes scheduled items whose slot has passed. Items
// overdue by more than the lookback stay untouched for an operator to
// look at.
type PublishSweep struct {
	contents    ContentLister
	engine      PublishEngine
	lookback    time.Duration
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

func NewPublishSweep(
	contents ContentLister,
	engine PublishEngine,
	lookback time.Duration,
	concurrency int,
	logger *slog.Logger,
) *PublishSweep {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PublishSweep{
		contents:    contents,
		engine:      engine,
		lookback:    lookback,
		concurrency: concurrency,
		logger:      logger.With("sweep", "publish"),
		now:         time.Now,
	}
}

func (s *PublishSweep) Run(ctx context.Context) (string, error) {
	start := s.now()

	items, err := s.contents.ListScheduledDue(ctx, start.Add(-s.lookback), start)
	if err != nil {
		return "", fmt.Errorf("list due items: %w", err)
	}

	stats := attemptAll(ctx, s.engine, items, s.concurrency, s.logger)
	stats.Duration = s.now().Sub(start).Round(time.Millisecond)

	s.logger.Info("publish sweep complete",
		"selected", stats.Selected,
		"published", stats.Published,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats.String(), nil
}

// attemptAll runs publish attempts with bounded concurrency and counts
// the outcomes.
func attemptAll(
	ctx context.Context,
	eng PublishEngine,
	items []domain.ContentItem,
	concurrency int,
	logger *slog.Logger,
) *domain.SweepStats {
	stats := &domain.SweepStats{Selected: len(items)}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := range items {
		wg.Add(1)
		sem <- struct{}{}

		go func(item *domain.ContentItem) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome, err := eng.Attempt(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				stats.Errors++
				logger.Error("publish attempt errored",
					"item_id", item.ID,
					"error", err,
				)
			case outcome.Event == lifecycle.EventNone:
				stats.Skipped++
			case outcome.Success:
				stats.Published++
			case outcome.Event == lifecycle.EventFailed:
				stats.Failed++
			default:
				stats.Retried++
			}
		}(&items[i])
	}

	wg.Wait()
	return stats
}
