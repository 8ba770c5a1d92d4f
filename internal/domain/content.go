package domain

import "time"

// Status is the lifecycle state of a content item. Only the lifecycle
// orchestrator writes it.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusScheduled     Status = "scheduled"
	StatusPublished     Status = "published"
	StatusFailed        Status = "failed"
)

// Terminal reports whether no automatic transition leaves the status.
// Rejected and failed items may still be reopened manually.
func (s Status) Terminal() bool {
	return s == StatusPublished || s == StatusFailed || s == StatusRejected
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformReddit    Platform = "reddit"
)

type ContentType string

const (
	ContentTypePhoto ContentType = "photo"
	ContentTypeVideo ContentType = "video"
	ContentTypeText  ContentType = "text"
)

// RiskTier is a display-only classification derived from the alignment
// score. It never gates lifecycle transitions.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskTierFor maps an alignment score (0-100) to a risk tier.
func RiskTierFor(score float64) RiskTier {
	switch {
	case score >= 90:
		return RiskLow
	case score >= 75:
		return RiskMedium
	default:
		return RiskHigh
	}
}

type ContentItem struct {
	ID               int64       `db:"id"`
	BrandID          int64       `db:"brand_id"`
	Title            string      `db:"title"`
	Caption          string      `db:"caption"`
	ContentType      ContentType `db:"content_type"`
	Platform         Platform    `db:"platform"`
	Status           Status      `db:"status"`
	ScheduledTime    *time.Time  `db:"scheduled_time"`
	PublishedTime    *time.Time  `db:"published_time"`
	AlignmentScore   float64     `db:"alignment_score"`
	MediaDescription *string     `db:"media_description"`
	PlatformPostID   *string     `db:"platform_post_id"`
	RetryCount       int         `db:"retry_count"`
	ErrorMessage     *string     `db:"error_message"`
	CreatedByAI      bool        `db:"created_by_ai"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

func (c *ContentItem) RiskTier() RiskTier {
	return RiskTierFor(c.AlignmentScore)
}

// DraftContent is what the generation service returns for one draft.
type DraftContent struct {
	Title          string
	Caption        string
	VisualBrief    string
	AlignmentScore float64
	ContentType    ContentType
	Platform       Platform
}
