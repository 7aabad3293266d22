package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 0))  // January
	assert.Equal(t, 28, DaysInMonth(2025, 1))  // February
	assert.Equal(t, 29, DaysInMonth(2024, 1))  // leap February
	assert.Equal(t, 30, DaysInMonth(2025, 3))  // April
	assert.Equal(t, 31, DaysInMonth(2025, 11)) // December
}

func TestFirstWeekday(t *testing.T) {
	// June 1, 2025 was a Sunday
	assert.Equal(t, 0, FirstWeekday(2025, 5))
	// September 1, 2025 was a Monday
	assert.Equal(t, 1, FirstWeekday(2025, 8))
	// February 1, 2024 was a Thursday
	assert.Equal(t, 4, FirstWeekday(2024, 1))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2025-06-01", FormatISO(2025, 5, 1))
	assert.Equal(t, "2025-12-31", FormatISO(2025, 11, 31))
	assert.Equal(t, "0099-01-05", FormatISO(99, 0, 5))
}

func TestFormatISODateIgnoresUTCOffset(t *testing.T) {
	// Late evening behind UTC: the UTC instant is already the next day,
	// the local calendar day must win.
	behind := time.FixedZone("UTC-11", -11*3600)
	lastOfMonth := time.Date(2025, 1, 31, 23, 0, 0, 0, behind)
	assert.Equal(t, "2025-01-31", FormatISODate(lastOfMonth))

	// Early morning ahead of UTC: the UTC instant is still the previous
	// day (and previous month).
	ahead := time.FixedZone("UTC+13", 13*3600)
	firstOfMonth := time.Date(2025, 3, 1, 0, 30, 0, 0, ahead)
	assert.Equal(t, "2025-03-01", FormatISODate(firstOfMonth))
}

func TestParseISO(t *testing.T) {
	y, m, d, ok := ParseISO("2025-10-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 9, m)
	assert.Equal(t, 15, d)

	_, _, _, ok = ParseISO("")
	assert.False(t, ok)

	_, _, _, ok = ParseISO("15/10/2025")
	assert.False(t, ok)

	_, _, _, ok = ParseISO("2025-13-40")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	// A date committed from calendar fields parses back to the same
	// fields regardless of the machine's timezone.
	for _, tc := range [][3]int{{2025, 0, 31}, {2024, 1, 29}, {2025, 11, 1}} {
		s := FormatISO(tc[0], tc[1], tc[2])
		y, m, d, ok := ParseISO(s)
		assert.True(t, ok)
		assert.Equal(t, tc[0], y)
		assert.Equal(t, tc[1], m)
		assert.Equal(t, tc[2], d)
	}
}
