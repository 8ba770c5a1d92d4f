package lifecycle

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_orchestrator/internal/domain"
)

// ContentStore is the persistence contract for content items. Every
// status write is a compare-and-set on the expected current status and
// reports whether it committed.
type ContentStore interface {
	Create(ctx context.Context, item *domain.ContentItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ContentItem, error)
	Delete(ctx context.Context, id int64) error

	TransitionStatus(ctx context.Context, id int64, from, to domain.Status, scheduledTime *time.Time) (bool, error)
	MarkPublished(ctx context.Context, id int64, from domain.Status, publishedAt time.Time, platformPostID string) (bool, error)
	MarkAttemptFailed(ctx context.Context, id int64, from, to domain.Status, retryCount int, errorMessage string) (bool, error)
	ResetRetryCount(ctx context.Context, id int64) (bool, error)
}

type ReviewStore interface {
	Create(ctx context.Context, rec *domain.ReviewRecord) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
