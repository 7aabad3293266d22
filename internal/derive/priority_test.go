package derive

import (
	"testing"
	"time"

	"github.com/pcnlabs/pcn/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSuggestPriorityBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline string
		want     models.Priority
	}{
		{"2025-06-07", models.PriorityHigh},   // exactly 6 days out
		{"2025-06-08", models.PriorityMedium}, // exactly 7 days out
		{"2025-06-30", models.PriorityMedium}, // exactly 29 days out
		{"2025-07-01", models.PriorityLow},    // exactly 30 days out
		{"2025-05-20", models.PriorityHigh},   // overdue
		{"2025-06-01", models.PriorityHigh},   // due today
		{"2026-01-01", models.PriorityLow},    // far out
	}

	for _, tc := range tests {
		got, ok := SuggestPriority(tc.deadline, now)
		assert.True(t, ok, tc.deadline)
		assert.Equal(t, tc.want, got, tc.deadline)
	}
}

func TestSuggestPriorityCeilsPartialDays(t *testing.T) {
	// Mid-afternoon, 6 days and 9 hours before the deadline's midnight:
	// the difference rounds up to 7 full days.
	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	got, ok := SuggestPriority("2025-06-08", now)
	assert.True(t, ok)
	assert.Equal(t, models.PriorityMedium, got)
}

func TestSuggestPriorityBlankDeadline(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, ok := SuggestPriority("", now)
	assert.False(t, ok)

	_, ok = SuggestPriority("not-a-date", now)
	assert.False(t, ok)
}
