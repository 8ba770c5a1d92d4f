// Package lifecycle owns the content state machine. The Orchestrator is
// the only component that writes a content item's status; every write is
// a compare-and-set against the status the caller observed.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"content_orchestrator/internal/domain"
)

// DefaultMaxRetries is the publish retry cap. Reaching it forces a
// terminal failed status.
const DefaultMaxRetries = 3

type Orchestrator struct {
	contents   ContentStore
	reviews    ReviewStore
	txManager  TransactionManager
	maxRetries int
	logger     *slog.Logger
	now        func() time.Time
}

func New(
	contents ContentStore,
	reviews ReviewStore,
	txManager TransactionManager,
	maxRetries int,
	logger *slog.Logger,
) *Orchestrator {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Orchestrator{
		contents:   contents,
		reviews:    reviews,
		txManager:  txManager,
		maxRetries: maxRetries,
		logger:     logger.With("component", "lifecycle"),
		now:        time.Now,
	}
}

func (o *Orchestrator) MaxRetries() int {
	return o.maxRetries
}

// CreateDraft persists a new human-authored item in draft.
func (o *Orchestrator) CreateDraft(ctx context.Context, item *domain.ContentItem) (int64, error) {
	item.Status = domain.StatusDraft
	item.RetryCount = 0
	return o.contents.Create(ctx, item)
}

// CreateGenerated persists an AI-generated draft straight into
// pending_review with its scheduled slot, awaiting human approval.
func (o *Orchestrator) CreateGenerated(
	ctx context.Context,
	brand *domain.Brand,
	draft *domain.DraftContent,
	scheduledAt time.Time,
) (*domain.ContentItem, error) {
	item := &domain.ContentItem{
		BrandID:        brand.ID,
		Title:          draft.Title,
		Caption:        draft.Caption,
		ContentType:    draft.ContentType,
		Platform:       draft.Platform,
		Status:         domain.StatusPendingReview,
		ScheduledTime:  &scheduledAt,
		AlignmentScore: draft.AlignmentScore,
		CreatedByAI:    true,
	}
	if draft.VisualBrief != "" {
		item.MediaDescription = &draft.VisualBrief
	}

	id, err := o.contents.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	o.logger.Info("generated content created",
		"item_id", id,
		"brand_id", brand.ID,
		"platform", item.Platform,
		"risk_tier", item.RiskTier(),
	)

	return item, nil
}

// SubmitForReview moves a draft into the review queue.
func (o *Orchestrator) SubmitForReview(ctx context.Context, id int64) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusDraft {
		return EventNone, invalidFrom("submit for review", item.Status)
	}

	ok, err := o.contents.TransitionStatus(ctx, id, domain.StatusDraft, domain.StatusPendingReview, nil)
	if err != nil {
		return EventNone, err
	}
	if !ok {
		return EventNone, ErrConflict
	}
	return EventSubmitted, nil
}

// Approve records an approve decision. With a future scheduled time the
// item lands in scheduled and becomes eligible for the publish sweep;
// without one it lands in approved.
func (o *Orchestrator) Approve(
	ctx context.Context,
	id, reviewerID int64,
	feedback string,
	scheduledTime *time.Time,
) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusPendingReview {
		return EventNone, invalidFrom("approve", item.Status)
	}

	to := domain.StatusApproved
	event := EventApproved
	if scheduledTime != nil {
		if !scheduledTime.After(o.now()) {
			return EventNone, ErrScheduleInPast
		}
		to = domain.StatusScheduled
		event = EventScheduled
	}

	err = o.review(ctx, item, reviewerID, domain.DecisionApprove, feedback, "", to, scheduledTime)
	if err != nil {
		return EventNone, err
	}
	return event, nil
}

// Reject records a reject decision. Rejected is soft-terminal; Reopen is
// the only way out.
func (o *Orchestrator) Reject(ctx context.Context, id, reviewerID int64, feedback string) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusPendingReview {
		return EventNone, invalidFrom("reject", item.Status)
	}

	err = o.review(ctx, item, reviewerID, domain.DecisionReject, feedback, "", domain.StatusRejected, nil)
	if err != nil {
		return EventNone, err
	}
	return EventRejected, nil
}

// RequestChanges sends the item back to draft with reviewer feedback.
func (o *Orchestrator) RequestChanges(
	ctx context.Context,
	id, reviewerID int64,
	feedback, suggestedChanges string,
) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusPendingReview {
		return EventNone, invalidFrom("request changes", item.Status)
	}

	err = o.review(ctx, item, reviewerID, domain.DecisionRequestChanges, feedback, suggestedChanges, domain.StatusDraft, nil)
	if err != nil {
		return EventNone, err
	}
	return EventChangesRequested, nil
}

// review commits the status flip and the append-only review record in one
// transaction.
func (o *Orchestrator) review(
	ctx context.Context,
	item *domain.ContentItem,
	reviewerID int64,
	decision domain.Decision,
	feedback, suggestedChanges string,
	to domain.Status,
	scheduledTime *time.Time,
) error {
	return o.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		ok, err := o.contents.TransitionStatus(txCtx, item.ID, item.Status, to, scheduledTime)
		if err != nil {
			return err
		}
		if !ok {
			return ErrConflict
		}

		rec := &domain.ReviewRecord{
			ItemID:     item.ID,
			ReviewerID: reviewerID,
			Decision:   decision,
			ReviewedAt: o.now(),
		}
		if feedback != "" {
			rec.Feedback = &feedback
		}
		if suggestedChanges != "" {
			rec.SuggestedChanges = &suggestedChanges
		}

		if _, err := o.reviews.Create(txCtx, rec); err != nil {
			return err
		}
		return nil
	})
}

// Schedule sets a future publish slot on an approved item.
func (o *Orchestrator) Schedule(ctx context.Context, id int64, scheduledTime time.Time) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusApproved {
		return EventNone, invalidFrom("schedule", item.Status)
	}
	if !scheduledTime.After(o.now()) {
		return EventNone, ErrScheduleInPast
	}

	ok, err := o.contents.TransitionStatus(ctx, id, domain.StatusApproved, domain.StatusScheduled, &scheduledTime)
	if err != nil {
		return EventNone, err
	}
	if !ok {
		return EventNone, ErrConflict
	}
	return EventScheduled, nil
}

// Reopen resets a rejected item to draft for another editing pass.
func (o *Orchestrator) Reopen(ctx context.Context, id int64) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusRejected {
		return EventNone, invalidFrom("reopen", item.Status)
	}

	ok, err := o.contents.TransitionStatus(ctx, id, domain.StatusRejected, domain.StatusDraft, nil)
	if err != nil {
		return EventNone, err
	}
	if !ok {
		return EventNone, ErrConflict
	}
	return EventReopened, nil
}

// ManualRetry puts a failed item back on the publish schedule. The retry
// count is only reset when the operator asks for it.
func (o *Orchestrator) ManualRetry(ctx context.Context, id int64, scheduledTime time.Time, resetRetries bool) (Event, error) {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return EventNone, err
	}
	if item.Status != domain.StatusFailed {
		return EventNone, invalidFrom("manual retry", item.Status)
	}
	if !scheduledTime.After(o.now()) {
		return EventNone, ErrScheduleInPast
	}

	err = o.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if resetRetries {
			if _, err := o.contents.ResetRetryCount(txCtx, id); err != nil {
				return err
			}
		}
		ok, err := o.contents.TransitionStatus(txCtx, id, domain.StatusFailed, domain.StatusScheduled, &scheduledTime)
		if err != nil {
			return err
		}
		if !ok {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return EventNone, err
	}
	return EventScheduled, nil
}

// ResetRetries zeroes the retry count of a failed item without changing
// its status. The retry sweep picks such items up on its next pass.
func (o *Orchestrator) ResetRetries(ctx context.Context, id int64) error {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Status != domain.StatusFailed {
		return invalidFrom("reset retries", item.Status)
	}

	ok, err := o.contents.ResetRetryCount(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	return nil
}

// RecordSuccess commits a successful publish attempt. A rejected
// compare-and-set means another attempt already settled the item; the
// call is then a no-op and returns EventNone.
func (o *Orchestrator) RecordSuccess(ctx context.Context, item *domain.ContentItem, platformPostID string) (Event, error) {
	if !attemptable(item.Status) {
		return EventNone, invalidFrom("record success", item.Status)
	}

	ok, err := o.contents.MarkPublished(ctx, item.ID, item.Status, o.now(), platformPostID)
	if err != nil {
		return EventNone, err
	}
	if !ok {
		o.logger.Debug("publish success superseded by concurrent transition", "item_id", item.ID)
		return EventNone, nil
	}
	return EventPublished, nil
}

// RecordFailure commits a failed publish attempt: the retry count goes up
// and, at the cap, the item lands terminally in failed. Like
// RecordSuccess the write is a compare-and-set and a rejected write is a
// no-op.
func (o *Orchestrator) RecordFailure(ctx context.Context, item *domain.ContentItem, cause error) (Event, error) {
	if !attemptable(item.Status) {
		return EventNone, invalidFrom("record failure", item.Status)
	}
	if item.RetryCount >= o.maxRetries {
		return EventNone, invalidFrom("record failure", item.Status)
	}

	newCount := item.RetryCount + 1
	to := item.Status
	if newCount >= o.maxRetries {
		to = domain.StatusFailed
	}

	ok, err := o.contents.MarkAttemptFailed(ctx, item.ID, item.Status, to, newCount, cause.Error())
	if err != nil {
		return EventNone, err
	}
	if !ok {
		o.logger.Debug("publish failure superseded by concurrent transition", "item_id", item.ID)
		return EventNone, nil
	}

	if to == domain.StatusFailed && item.Status != domain.StatusFailed {
		return EventFailed, nil
	}
	return EventRetryPending, nil
}

// Delete removes an item. Published content is immutable for audit.
func (o *Orchestrator) Delete(ctx context.Context, id int64) error {
	item, err := o.contents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Status == domain.StatusPublished {
		return ErrPublishedImmutable
	}
	return o.contents.Delete(ctx, id)
}

// attemptable lists the statuses a publish attempt may be recorded
// against: scheduled and approved normally, failed via the retry sweep.
func attemptable(s domain.Status) bool {
	return s == domain.StatusScheduled || s == domain.StatusApproved || s == domain.StatusFailed
}
