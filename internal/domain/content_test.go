package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskTier
	}{
		{100, RiskLow},
		{90, RiskLow},
		{89.9, RiskMedium},
		{75, RiskMedium},
		{74.9, RiskHigh},
		{0, RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskTierFor(tt.score), "score %v", tt.score)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusPublished.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusRejected.Terminal())

	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusPendingReview.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusScheduled.Terminal())
}
