package domain

import "time"

// Decision is a human review outcome.
type Decision string

const (
	DecisionApprove        Decision = "approve"
	DecisionReject         Decision = "reject"
	DecisionRequestChanges Decision = "request_changes"
)

// ReviewRecord is an append-only record of one human decision on one
// content item. Records are only ever created, never mutated.
type ReviewRecord struct {
	ID               int64     `db:"id"`
	ItemID           int64     `db:"item_id"`
	ReviewerID       int64     `db:"reviewer_id"`
	Decision         Decision  `db:"decision"`
	Feedback         *string   `db:"feedback"`
	SuggestedChanges *string   `db:"suggested_changes"`
	ReviewedAt       time.Time `db:"reviewed_at"`
}
