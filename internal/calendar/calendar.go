// Package calendar implements the date picker's navigable view state:
// a month/year cursor, a days/months/years granularity mode and an
// open/closed flag. All transitions are plain methods on Picker; the
// rendering widget in the ui package drives them from key presses.
package calendar

import (
	"time"

	"github.com/pcnlabs/pcn/internal/dates"
)

// Mode is the picker's active granularity
type Mode int

const (
	ModeDays Mode = iota
	ModeMonths
	ModeYears
)

// Picker holds the view state for one date picker instance.
// The selected value itself is owned by the caller; the picker only
// reports committed dates.
type Picker struct {
	ViewYear  int
	ViewMonth int // 0-based
	Mode      Mode
	Open      bool
}

// New creates a picker viewing the month of the given ISO date,
// or of now when the value is blank or malformed.
func New(value string, now time.Time) *Picker {
	y, m, _, ok := dates.ParseISO(value)
	if !ok {
		y, m = now.Year(), int(now.Month())-1
	}
	return &Picker{ViewYear: y, ViewMonth: m, Mode: ModeDays}
}

// Toggle flips the open state. Opening always starts in days mode.
func (p *Picker) Toggle() {
	p.Open = !p.Open
	if p.Open {
		p.Mode = ModeDays
	}
}

// Close closes the picker.
func (p *Picker) Close() { p.Open = false }

// Dismiss handles the "interaction outside the widget" signal.
func (p *Picker) Dismiss() { p.Open = false }

// PrevMonth moves the view back one month, rolling the year as needed.
func (p *Picker) PrevMonth() {
	p.ViewMonth--
	if p.ViewMonth < 0 {
		p.ViewMonth = 11
		p.ViewYear--
	}
}

// NextMonth moves the view forward one month, rolling the year as needed.
func (p *Picker) NextMonth() {
	p.ViewMonth++
	if p.ViewMonth > 11 {
		p.ViewMonth = 0
		p.ViewYear++
	}
}

// EnterMonths switches from the day grid to the month grid.
func (p *Picker) EnterMonths() { p.Mode = ModeMonths }

// SelectMonth sets the viewed month and returns to the day grid.
func (p *Picker) SelectMonth(month0 int) {
	p.ViewMonth = month0
	p.Mode = ModeDays
}

// EnterYears switches from the month grid to the year grid.
func (p *Picker) EnterYears() { p.Mode = ModeYears }

// SelectYear sets the viewed year and returns to the month grid.
func (p *Picker) SelectYear(year int) {
	p.ViewYear = year
	p.Mode = ModeMonths
}

// SelectDay commits the given day of the viewed month, closing the
// picker and returning the committed ISO date.
func (p *Picker) SelectDay(day int) string {
	p.Open = false
	return dates.FormatISO(p.ViewYear, p.ViewMonth, day)
}

// YearRange lists the years offered by the year grid: the current year
// minus 5 through plus 10. Dates outside the range stay reachable
// through month navigation.
func YearRange(now time.Time) []int {
	current := now.Year()
	years := make([]int, 0, 16)
	for y := current - 5; y <= current+10; y++ {
		years = append(years, y)
	}
	return years
}
