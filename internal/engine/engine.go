// Package engine executes publish attempts against platform adapters and
// feeds the outcome back into the lifecycle. The retry policy treats
// every failure the same; only the stored message differs.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/lifecycle"
	"content_orchestrator/internal/platform"
)

// ErrAdapterNotConfigured means no usable adapter exists for the item's
// platform. Configuration errors still count against the retry budget so
// they surface quickly.
var ErrAdapterNotConfigured = errors.New("no adapter configured for platform")

// ErrAdapterTimeout marks an attempt that exceeded the publish timeout.
var ErrAdapterTimeout = errors.New("platform adapter timed out")

// Metrics is the optional outcome counter hook.
type Metrics interface {
	RecordPublishOutcome(platform string, success bool)
}

// Outcome is the result of one publish attempt. Event is EventNone when
// a concurrent attempt settled the item first; the other writer's
// outcome stands and no side effects were recorded here.
type Outcome struct {
	Success        bool
	PlatformPostID string
	Event          lifecycle.Event
	Err            error
}

type Engine struct {
	registry *platform.Registry
	orch     Transitioner
	notifier Notifier
	metrics  Metrics
	timeout  time.Duration
	logger   *slog.Logger
}

func New(
	registry *platform.Registry,
	orch Transitioner,
	notifier Notifier,
	metrics Metrics,
	timeout time.Duration,
	logger *slog.Logger,
) *Engine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{
		registry: registry,
		orch:     orch,
		notifier: notifier,
		metrics:  metrics,
		timeout:  timeout,
		logger:   logger.With("component", "engine"),
	}
}

// Attempt publishes one item through its platform adapter and records
// the outcome. The returned error is reserved for store failures; a
// failed publish is reported through the Outcome.
func (e *Engine) Attempt(ctx context.Context, item *domain.ContentItem) (*Outcome, error) {
	adapter, ok := e.registry.Lookup(item.Platform)
	if !ok || !adapter.IsConfigured() {
		return e.fail(ctx, item, fmt.Errorf("%w: %s", ErrAdapterNotConfigured, item.Platform))
	}

	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	postID, err := adapter.Publish(attemptCtx, item)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrAdapterTimeout, e.timeout)
		}
		return e.fail(ctx, item, err)
	}

	return e.succeed(ctx, item, postID)
}

func (e *Engine) succeed(ctx context.Context, item *domain.ContentItem, postID string) (*Outcome, error) {
	event, err := e.orch.RecordSuccess(ctx, item, postID)
	if err != nil {
		return nil, fmt.Errorf("record publish success: %w", err)
	}

	out := &Outcome{Success: true, PlatformPostID: postID, Event: event}
	if event != lifecycle.EventPublished {
		return out, nil
	}

	e.logger.Info("content published",
		"item_id", item.ID,
		"platform", item.Platform,
		"post_id", postID,
	)
	e.recordOutcome(item, true)

	if err := e.notifier.Published(ctx, item, postID); err != nil {
		e.logger.Error("publish notification failed", "item_id", item.ID, "error", err)
	}

	return out, nil
}

func (e *Engine) fail(ctx context.Context, item *domain.ContentItem, cause error) (*Outcome, error) {
	event, err := e.orch.RecordFailure(ctx, item, cause)
	if err != nil {
		return nil, fmt.Errorf("record publish failure: %w", err)
	}

	out := &Outcome{Event: event, Err: cause}
	if event == lifecycle.EventNone {
		return out, nil
	}

	e.logger.Warn("publish attempt failed",
		"item_id", item.ID,
		"platform", item.Platform,
		"retry_count", item.RetryCount+1,
		"error", cause,
	)

	if event == lifecycle.EventFailed {
		e.recordOutcome(item, false)
		// The store has the message; mirror it on the item so the
		// notification payload carries it too.
		msg := cause.Error()
		item.ErrorMessage = &msg
		if err := e.notifier.Failed(ctx, item); err != nil {
			e.logger.Error("failure notification failed", "item_id", item.ID, "error", err)
		}
	}

	return out, nil
}

func (e *Engine) recordOutcome(item *domain.ContentItem, success bool) {
	if e.metrics != nil {
		e.metrics.RecordPublishOutcome(string(item.Platform), success)
	}
}
