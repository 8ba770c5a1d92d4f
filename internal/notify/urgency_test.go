package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyFor(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Duration
		want  Urgency
	}{
		{"slot in 30 minutes", 30 * time.Minute, UrgencyUrgent},
		{"just under two hours", 2*time.Hour - time.Minute, UrgencyUrgent},
		{"exactly two hours", 2 * time.Hour, UrgencyHigh},
		{"three hours out", 3 * time.Hour, UrgencyHigh},
		{"exactly four hours", 4 * time.Hour, UrgencyNormal},
		{"next day", 24 * time.Hour, UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UrgencyFor(now, now.Add(tt.until)))
		})
	}
}
