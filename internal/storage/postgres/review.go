package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"content_orchestrator/internal/domain"
)

type ReviewStore struct {
	db *sqlx.DB
}

func NewReviewStore(db *sqlx.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) Create(ctx context.Context, rec *domain.ReviewRecord) (int64, error) {
	query := `
		INSERT INTO content_reviews (
			item_id, reviewer_id, decision, feedback, suggested_changes, reviewed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		rec.ItemID,
		rec.ReviewerID,
		rec.Decision,
		rec.Feedback,
		rec.SuggestedChanges,
		rec.ReviewedAt,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByItem returns the review log for an item, oldest first.
func (s *ReviewStore) ListByItem(ctx context.Context, itemID int64) ([]domain.ReviewRecord, error) {
	query := `
		SELECT id, item_id, reviewer_id, decision, feedback, suggested_changes, reviewed_at
		FROM content_reviews
		WHERE item_id = $1
		ORDER BY reviewed_at, id`

	var recs []domain.ReviewRecord
	err := s.db.SelectContext(ctx, &recs, query, itemID)
	return recs, err
}
