package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestNewFromValue(t *testing.T) {
	p := New("2025-10-15", now)
	assert.Equal(t, 2025, p.ViewYear)
	assert.Equal(t, 9, p.ViewMonth)
	assert.Equal(t, ModeDays, p.Mode)
	assert.False(t, p.Open)
}

func TestNewFallsBackToNow(t *testing.T) {
	for _, value := range []string{"", "garbage"} {
		p := New(value, now)
		assert.Equal(t, 2025, p.ViewYear)
		assert.Equal(t, 5, p.ViewMonth)
	}
}

func TestToggleResetsToDays(t *testing.T) {
	p := New("", now)
	p.Toggle()
	assert.True(t, p.Open)
	p.EnterMonths()
	p.Toggle()
	assert.False(t, p.Open)
	p.Toggle()
	assert.Equal(t, ModeDays, p.Mode)
}

func TestMonthRollover(t *testing.T) {
	p := New("2025-12-10", now)
	p.NextMonth()
	assert.Equal(t, 2026, p.ViewYear)
	assert.Equal(t, 0, p.ViewMonth)

	p = New("2025-01-10", now)
	p.PrevMonth()
	assert.Equal(t, 2024, p.ViewYear)
	assert.Equal(t, 11, p.ViewMonth)
}

func TestModeTransitions(t *testing.T) {
	p := New("2025-06-01", now)
	p.Toggle()

	p.EnterMonths()
	assert.Equal(t, ModeMonths, p.Mode)

	p.EnterYears()
	assert.Equal(t, ModeYears, p.Mode)

	p.SelectYear(2027)
	assert.Equal(t, 2027, p.ViewYear)
	assert.Equal(t, ModeMonths, p.Mode)

	p.SelectMonth(2)
	assert.Equal(t, 2, p.ViewMonth)
	assert.Equal(t, ModeDays, p.Mode)
}

func TestSelectDayCommitsAndCloses(t *testing.T) {
	p := New("2025-06-01", now)
	p.Toggle()

	committed := p.SelectDay(9)
	assert.Equal(t, "2025-06-09", committed)
	assert.False(t, p.Open)
}

func TestSelectDayAfterNavigation(t *testing.T) {
	p := New("2025-01-31", now)
	p.Toggle()
	p.PrevMonth()

	committed := p.SelectDay(25)
	assert.Equal(t, "2024-12-25", committed)
}

func TestDismiss(t *testing.T) {
	p := New("", now)
	p.Toggle()
	p.Dismiss()
	assert.False(t, p.Open)
}

func TestYearRange(t *testing.T) {
	years := YearRange(now)
	assert.Len(t, years, 16)
	assert.Equal(t, 2020, years[0])
	assert.Equal(t, 2035, years[len(years)-1])
}
