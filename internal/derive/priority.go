package derive

import (
	"math"
	"time"

	"github.com/pcnlabs/pcn/internal/dates"
	"github.com/pcnlabs/pcn/internal/models"
)

// SuggestPriority derives an urgency level from a deadline's proximity
// to now: under 7 days (including overdue) is High, under 30 is Medium,
// anything further out is Low. ok is false when the deadline is blank or
// malformed, in which case the caller leaves the current priority alone.
//
// The suggestion is not sticky: the creation form re-runs this on every
// deadline change and overwrites whatever the user picked manually.
func SuggestPriority(deadline string, now time.Time) (models.Priority, bool) {
	y, m, d, ok := dates.ParseISO(deadline)
	if !ok {
		return "", false
	}

	target := time.Date(y, time.Month(m+1), d, 0, 0, 0, 0, now.Location())
	diffDays := int(math.Ceil(target.Sub(now).Hours() / 24))

	switch {
	case diffDays < 7:
		return models.PriorityHigh, true
	case diffDays < 30:
		return models.PriorityMedium, true
	}
	return models.PriorityLow, true
}
