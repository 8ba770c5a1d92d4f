package domain

import (
	"time"

	"github.com/lib/pq"
)

// Brand is the ownership boundary for content items. The core only needs
// the generation settings; the rest is carried for the generation service.
type Brand struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	Industry         string         `db:"industry"`
	Description      string         `db:"description"`
	TargetAudience   string         `db:"target_audience"`
	Keywords         pq.StringArray `db:"keywords"`
	PostingTimes     pq.StringArray `db:"posting_times"` // "HH:MM", UTC
	PostingFrequency int            `db:"posting_frequency"`
	AutoGenerate     bool           `db:"auto_generate"`
	DefaultPlatform  Platform       `db:"default_platform"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
