package sweep

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/engine"
	"content_orchestrator/internal/generation"
	"content_orchestrator/internal/notify"
)

// ContentLister exposes the eligibility queries the sweeps select on.
type ContentLister interface {
	ListScheduledDue(ctx context.Context, windowStart, now time.Time) ([]domain.ContentItem, error)
	ListPendingReviewWithin(ctx context.Context, now, until time.Time) ([]domain.ContentItem, error)
	ListFailedRetryable(ctx context.Context, since time.Time, maxRetries int) ([]domain.ContentItem, error)
	LastContentType(ctx context.Context, brandID int64) (domain.ContentType, error)
}

type BrandLister interface {
	ListAutoGenerate(ctx context.Context) ([]domain.Brand, error)
}

type Generator interface {
	Draft(ctx context.Context, req generation.Request) (*domain.DraftContent, error)
}

// Creator persists a generated draft into the review queue.
type Creator interface {
	CreateGenerated(ctx context.Context, brand *domain.Brand, draft *domain.DraftContent, scheduledAt time.Time) (*domain.ContentItem, error)
}

type PublishEngine interface {
	Attempt(ctx context.Context, item *domain.ContentItem) (*engine.Outcome, error)
}

type Notifier interface {
	ApprovalRequested(ctx context.Context, item *domain.ContentItem) error
	ApprovalReminder(ctx context.Context, item *domain.ContentItem, urgency notify.Urgency) error
}
