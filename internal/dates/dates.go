// Package dates holds the calendar arithmetic shared by the date picker,
// priority inference and today-highlighting. Months are zero-indexed
// throughout, matching the picker's view state.
package dates

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of days in the given zero-indexed month.
func DaysInMonth(year, month0 int) int {
	// Day 0 of the following month is the last day of this one.
	t := time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}

// FirstWeekday returns the weekday (Sunday=0) of the 1st of the month.
func FirstWeekday(year, month0 int) int {
	t := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return int(t.Weekday())
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatISO builds a YYYY-MM-DD string directly from calendar fields.
// Building from fields rather than converting through UTC keeps the date
// from shifting across a day boundary for users away from UTC.
func FormatISO(year, month0, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// FormatISODate formats t's local calendar day as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	y, m, d := t.Date()
	return FormatISO(y, int(m)-1, d)
}

// ParseISO parses a YYYY-MM-DD string into calendar fields.
// ok is false for anything that is not a valid date of that shape.
func ParseISO(s string) (year, month0, day int, ok bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, false
	}
	y, m, d := t.Date()
	return y, int(m) - 1, d, true
}
