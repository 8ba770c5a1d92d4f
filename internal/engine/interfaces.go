package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/lifecycle"
)

// Transitioner records publish outcomes through guarded lifecycle
// transitions. Satisfied by *lifecycle.Orchestrator.
type Transitioner interface {
	RecordSuccess(ctx context.Context, item *domain.ContentItem, platformPostID string) (lifecycle.Event, error)
	RecordFailure(ctx context.Context, item *domain.ContentItem, cause error) (lifecycle.Event, error)
}

// Notifier fans out terminal publish events. Delivery failures never
// affect lifecycle state.
type Notifier interface {
	Published(ctx context.Context, item *domain.ContentItem, platformPostID string) error
	Failed(ctx context.Context, item *domain.ContentItem) error
}
