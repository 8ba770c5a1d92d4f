package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/generation"
)

var defaultPostingTimes = []string{"09:00", "17:00"}

const defaultPostingFrequency = 2

// GenerationSweep drafts tomorrow's content for brands opted in to
// auto-generation. Drafts land in the review queue; nothing publishes
// without a human approval.
type GenerationSweep struct {
	brands    BrandLister
	contents  ContentLister
	generator Generator
	creator   Creator
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

func NewGenerationSweep(
	brands BrandLister,
	contents ContentLister,
	generator Generator,
	creator Creator,
	notifier Notifier,
	logger *slog.Logger,
) *GenerationSweep {
	return &GenerationSweep{
		brands:    brands,
		contents:  contents,
		generator: generator,
		creator:   creator,
		notifier:  notifier,
		logger:    logger.With("sweep", "generation"),
		now:       time.Now,
	}
}

func (s *GenerationSweep) Run(ctx context.Context) (string, error) {
	start := s.now()

	brands, err := s.brands.ListAutoGenerate(ctx)
	if err != nil {
		return "", fmt.Errorf("list brands: %w", err)
	}

	stats := &domain.SweepStats{Selected: len(brands)}

	for i := range brands {
		s.generateForBrand(ctx, &brands[i], start, stats)
	}

	stats.Duration = s.now().Sub(start).Round(time.Millisecond)

	s.logger.Info("generation sweep complete",
		"brands", stats.Selected,
		"created", stats.Created,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats.String(), nil
}

func (s *GenerationSweep) generateForBrand(ctx context.Context, brand *domain.Brand, now time.Time, stats *domain.SweepStats) {
	times := []string(brand.PostingTimes)
	if len(times) == 0 {
		times = defaultPostingTimes
	}
	count := brand.PostingFrequency
	if count <= 0 {
		count = defaultPostingFrequency
	}

	last, err := s.contents.LastContentType(ctx, brand.ID)
	if err != nil {
		stats.Errors++
		s.logger.Error("last content type lookup failed",
			"brand_id", brand.ID,
			"error", err,
		)
		return
	}
	contentType := alternate(last)

	for i := 0; i < count; i++ {
		slot, err := slotTomorrow(now, times[i%len(times)])
		if err != nil {
			stats.Errors++
			s.logger.Error("bad posting time",
				"brand_id", brand.ID,
				"posting_time", times[i%len(times)],
				"error", err,
			)
			continue
		}

		draft, err := s.generator.Draft(ctx, generation.Request{
			BrandName:      brand.Name,
			Industry:       brand.Industry,
			Description:    brand.Description,
			TargetAudience: brand.TargetAudience,
			Keywords:       brand.Keywords,
			ContentType:    contentType,
			Platform:       brand.DefaultPlatform,
		})
		if err != nil {
			stats.Errors++
			s.logger.Error("draft generation failed",
				"brand_id", brand.ID,
				"error", err,
			)
			continue
		}

		item, err := s.creator.CreateGenerated(ctx, brand, draft, slot)
		if err != nil {
			stats.Errors++
			s.logger.Error("draft creation failed",
				"brand_id", brand.ID,
				"error", err,
			)
			continue
		}
		stats.Created++
		contentType = alternate(contentType)

		if err := s.notifier.ApprovalRequested(ctx, item); err != nil {
			stats.Errors++
			s.logger.Error("approval notification failed",
				"item_id", item.ID,
				"error", err,
			)
			continue
		}
		stats.Notified++
	}
}

// alternate flips between photo and video so consecutive drafts vary.
func alternate(last domain.ContentType) domain.ContentType {
	if last == domain.ContentTypePhoto {
		return domain.ContentTypeVideo
	}
	return domain.ContentTypePhoto
}

// slotTomorrow resolves an "HH:MM" posting time to tomorrow at that time
// in UTC.
func slotTomorrow(now time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse posting time %q: %w", hhmm, err)
	}
	tomorrow := now.UTC().AddDate(0, 0, 1)
	return time.Date(
		tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC,
	), nil
}
