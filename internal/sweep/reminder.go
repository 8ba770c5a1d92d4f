package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/notify"
)

// ReminderSweep nudges reviewers about items still awaiting review whose
// publish slot falls inside the lookahead window.
type ReminderSweep struct {
	contents  ContentLister
	notifier  Notifier
	lookahead time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewReminderSweep(
	contents ContentLister,
	notifier Notifier,
	lookahead time.Duration,
	logger *slog.Logger,
) *ReminderSweep {
	return &ReminderSweep{
		contents:  contents,
		notifier:  notifier,
		lookahead: lookahead,
		logger:    logger.With("sweep", "reminder"),
		now:       time.Now,
	}
}

func (s *ReminderSweep) Run(ctx context.Context) (string, error) {
	start := s.now()

	items, err := s.contents.ListPendingReviewWithin(ctx, start, start.Add(s.lookahead))
	if err != nil {
		return "", fmt.Errorf("list pending review items: %w", err)
	}

	stats := &domain.SweepStats{Selected: len(items)}

	for i := range items {
		item := &items[i]
		urgency := notify.UrgencyFor(start, *item.ScheduledTime)

		if err := s.notifier.ApprovalReminder(ctx, item, urgency); err != nil {
			stats.Errors++
			s.logger.Error("reminder failed",
				"item_id", item.ID,
				"error", err,
			)
			continue
		}
		stats.Notified++
	}

	stats.Duration = s.now().Sub(start).Round(time.Millisecond)

	s.logger.Info("reminder sweep complete",
		"selected", stats.Selected,
		"notified", stats.Notified,
		"duration", stats.Duration,
	)

	return stats.String(), nil
}
