// Package postgres implements the stores on PostgreSQL. Status writes
// are compare-and-set: the UPDATE carries the expected current status in
// its WHERE clause and reports whether it matched a row.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"content_orchestrator/internal/domain"
)

const contentColumns = `
	id, brand_id, title, caption, content_type, platform, status,
	scheduled_time, published_time, alignment_score, media_description,
	platform_post_id, retry_count, error_message, created_by_ai,
	created_at, updated_at`

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Create(ctx context.Context, item *domain.ContentItem) (int64, error) {
	query := `
		INSERT INTO content_items (
			brand_id, title, caption, content_type, platform, status,
			scheduled_time, alignment_score, media_description, created_by_ai
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		item.BrandID,
		item.Title,
		item.Caption,
		item.ContentType,
		item.Platform,
		item.Status,
		item.ScheduledTime,
		item.AlignmentScore,
		item.MediaDescription,
		item.CreatedByAI,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ContentStore) GetByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var item domain.ContentItem
	query := `
		SELECT` + contentColumns + `
		FROM content_items
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &item, query, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ContentStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM content_items WHERE id = $1", id)
	return err
}

// TransitionStatus flips the status if the current one matches. A non-nil
// scheduledTime also moves the publish slot.
func (s *ContentStore) TransitionStatus(ctx context.Context, id int64, from, to domain.Status, scheduledTime *time.Time) (bool, error) {
	query := `
		UPDATE content_items
		SET status = $3,
		    scheduled_time = COALESCE($4, scheduled_time),
		    updated_at = now()
		WHERE id = $1 AND status = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, from, to, scheduledTime)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// MarkPublished commits a successful publish: published_time is set
// exactly once and the last error is cleared.
func (s *ContentStore) MarkPublished(ctx context.Context, id int64, from domain.Status, publishedAt time.Time, platformPostID string) (bool, error) {
	query := `
		UPDATE content_items
		SET status = $3,
		    published_time = $4,
		    platform_post_id = $5,
		    error_message = NULL,
		    updated_at = now()
		WHERE id = $1 AND status = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		id, from, domain.StatusPublished, publishedAt, platformPostID,
	)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// MarkAttemptFailed stores the outcome of a failed publish attempt.
func (s *ContentStore) MarkAttemptFailed(ctx context.Context, id int64, from, to domain.Status, retryCount int, errorMessage string) (bool, error) {
	query := `
		UPDATE content_items
		SET status = $3,
		    retry_count = $4,
		    error_message = $5,
		    updated_at = now()
		WHERE id = $1 AND status = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, from, to, retryCount, errorMessage)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *ContentStore) ResetRetryCount(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE content_items SET retry_count = 0, updated_at = now() WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// ListScheduledDue returns scheduled items whose slot has passed but not
// by more than the lookback window, oldest first.
func (s *ContentStore) ListScheduledDue(ctx context.Context, windowStart, now time.Time) ([]domain.ContentItem, error) {
	query := `
		SELECT` + contentColumns + `
		FROM content_items
		WHERE status = $1
		  AND scheduled_time <= $2
		  AND scheduled_time >= $3
		ORDER BY scheduled_time`

	var items []domain.ContentItem
	err := s.db.SelectContext(ctx, &items, query, domain.StatusScheduled, now, windowStart)
	return items, err
}

// ListPendingReviewWithin returns items awaiting review whose publish
// slot falls inside (now, until].
func (s *ContentStore) ListPendingReviewWithin(ctx context.Context, now, until time.Time) ([]domain.ContentItem, error) {
	query := `
		SELECT` + contentColumns + `
		FROM content_items
		WHERE status = $1
		  AND scheduled_time > $2
		  AND scheduled_time <= $3
		ORDER BY scheduled_time`

	var items []domain.ContentItem
	err := s.db.SelectContext(ctx, &items, query, domain.StatusPendingReview, now, until)
	return items, err
}

// ListFailedRetryable returns failed items with retry budget left that
// were touched since the given instant.
func (s *ContentStore) ListFailedRetryable(ctx context.Context, since time.Time, maxRetries int) ([]domain.ContentItem, error) {
	query := `
		SELECT` + contentColumns + `
		FROM content_items
		WHERE status = $1
		  AND retry_count < $2
		  AND updated_at >= $3
		ORDER BY updated_at`

	var items []domain.ContentItem
	err := s.db.SelectContext(ctx, &items, query, domain.StatusFailed, maxRetries, since)
	return items, err
}

// LastContentType returns the content type of the brand's most recent
// item, or empty when the brand has none yet.
func (s *ContentStore) LastContentType(ctx context.Context, brandID int64) (domain.ContentType, error) {
	query := `
		SELECT content_type
		FROM content_items
		WHERE brand_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var ct domain.ContentType
	err := s.db.GetContext(ctx, &ct, query, brandID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return ct, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
