package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pcnlabs/pcn/internal/calendar"
	"github.com/pcnlabs/pcn/internal/dates"
	"github.com/pcnlabs/pcn/internal/ui/keys"
	"github.com/pcnlabs/pcn/internal/ui/styles"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DatePicker is the calendar widget used by the creation form. It wraps
// the pure picker state and adds a keyboard cursor for each grid.
type DatePicker struct {
	picker      *calendar.Picker
	value       string // committed ISO date, owned by the caller via Value
	dayCursor   int
	monthCursor int
	yearCursor  int
	styles      *styles.Styles
	keys        keys.KeyMap
	clock       func() time.Time
}

// NewDatePicker creates a picker wrapping the given selected date
func NewDatePicker(value string, clock func() time.Time) *DatePicker {
	return &DatePicker{
		picker: calendar.New(value, clock()),
		value:  value,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		clock:  clock,
	}
}

// Value returns the committed ISO date, empty if none selected yet
func (d *DatePicker) Value() string { return d.value }

// IsOpen reports whether the widget is expanded
func (d *DatePicker) IsOpen() bool { return d.picker.Open }

// Toggle opens or closes the widget
func (d *DatePicker) Toggle() {
	d.picker.Toggle()
	if d.picker.Open {
		d.resetCursors()
	}
}

// Dismiss closes the widget without committing, the "interaction left
// the widget" signal.
func (d *DatePicker) Dismiss() { d.picker.Dismiss() }

func (d *DatePicker) resetCursors() {
	d.dayCursor = 1
	if y, m, day, ok := dates.ParseISO(d.value); ok && y == d.picker.ViewYear && m == d.picker.ViewMonth {
		d.dayCursor = day
	}
	d.monthCursor = d.picker.ViewMonth
	d.yearCursor = 0
	for i, y := range calendar.YearRange(d.clock()) {
		if y == d.picker.ViewYear {
			d.yearCursor = i
			break
		}
	}
}

// Update handles a key press while the widget is open. committed holds
// the chosen ISO date when a day was selected; handled is false when
// the key should fall through to the surrounding form.
func (d *DatePicker) Update(msg tea.KeyMsg) (committed string, handled bool) {
	if !d.picker.Open {
		return "", false
	}

	switch d.picker.Mode {
	case calendar.ModeDays:
		return d.updateDays(msg)
	case calendar.ModeMonths:
		return "", d.updateMonths(msg)
	case calendar.ModeYears:
		return "", d.updateYears(msg)
	}
	return "", false
}

func (d *DatePicker) updateDays(msg tea.KeyMsg) (string, bool) {
	total := dates.DaysInMonth(d.picker.ViewYear, d.picker.ViewMonth)

	switch {
	case key.Matches(msg, d.keys.Back):
		d.picker.Dismiss()
		return "", true

	case key.Matches(msg, d.keys.Left):
		if d.dayCursor > 1 {
			d.dayCursor--
		}
		return "", true

	case key.Matches(msg, d.keys.Right):
		if d.dayCursor < total {
			d.dayCursor++
		}
		return "", true

	case key.Matches(msg, d.keys.Up):
		if d.dayCursor > 7 {
			d.dayCursor -= 7
		}
		return "", true

	case key.Matches(msg, d.keys.Down):
		if d.dayCursor+7 <= total {
			d.dayCursor += 7
		}
		return "", true

	case msg.String() == "[":
		d.picker.PrevMonth()
		d.clampDayCursor()
		return "", true

	case msg.String() == "]":
		d.picker.NextMonth()
		d.clampDayCursor()
		return "", true

	case msg.String() == "m":
		d.picker.EnterMonths()
		d.monthCursor = d.picker.ViewMonth
		return "", true

	case key.Matches(msg, d.keys.Enter):
		d.value = d.picker.SelectDay(d.dayCursor)
		return d.value, true
	}

	return "", true
}

func (d *DatePicker) clampDayCursor() {
	total := dates.DaysInMonth(d.picker.ViewYear, d.picker.ViewMonth)
	if d.dayCursor > total {
		d.dayCursor = total
	}
}

func (d *DatePicker) updateMonths(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, d.keys.Back):
		d.picker.SelectMonth(d.picker.ViewMonth)
		return true

	case key.Matches(msg, d.keys.Left):
		if d.monthCursor > 0 {
			d.monthCursor--
		}
	case key.Matches(msg, d.keys.Right):
		if d.monthCursor < 11 {
			d.monthCursor++
		}
	case key.Matches(msg, d.keys.Up):
		if d.monthCursor >= 3 {
			d.monthCursor -= 3
		}
	case key.Matches(msg, d.keys.Down):
		if d.monthCursor+3 <= 11 {
			d.monthCursor += 3
		}
	case msg.String() == "y":
		d.picker.EnterYears()
		d.yearCursor = 0
		for i, y := range calendar.YearRange(d.clock()) {
			if y == d.picker.ViewYear {
				d.yearCursor = i
				break
			}
		}
	case key.Matches(msg, d.keys.Enter):
		d.picker.SelectMonth(d.monthCursor)
		d.clampDayCursor()
	}
	return true
}

func (d *DatePicker) updateYears(msg tea.KeyMsg) bool {
	years := calendar.YearRange(d.clock())

	switch {
	case key.Matches(msg, d.keys.Back):
		d.picker.Mode = calendar.ModeMonths

	case key.Matches(msg, d.keys.Left):
		if d.yearCursor > 0 {
			d.yearCursor--
		}
	case key.Matches(msg, d.keys.Right):
		if d.yearCursor < len(years)-1 {
			d.yearCursor++
		}
	case key.Matches(msg, d.keys.Up):
		if d.yearCursor >= 4 {
			d.yearCursor -= 4
		}
	case key.Matches(msg, d.keys.Down):
		if d.yearCursor+4 <= len(years)-1 {
			d.yearCursor += 4
		}
	case key.Matches(msg, d.keys.Enter):
		d.picker.SelectYear(years[d.yearCursor])
		d.monthCursor = d.picker.ViewMonth
	}
	return true
}

// View renders the collapsed field or the expanded grid
func (d *DatePicker) View(focused bool) string {
	s := d.styles

	label := d.value
	if label == "" {
		label = "Select target date"
	}
	field := s.Input.Render(label)
	if focused {
		field = s.InputFocused.Render(label)
	}

	if !d.picker.Open {
		return field
	}

	var grid string
	switch d.picker.Mode {
	case calendar.ModeDays:
		grid = d.viewDays()
	case calendar.ModeMonths:
		grid = d.viewMonths()
	case calendar.ModeYears:
		grid = d.viewYears()
	}

	return lipgloss.JoinVertical(lipgloss.Left, field, s.PanelFocused.Render(grid))
}

func (d *DatePicker) viewDays() string {
	s := d.styles
	now := d.clock()

	header := fmt.Sprintf("%s %d", monthNames[d.picker.ViewMonth], d.picker.ViewYear)
	lines := []string{
		s.Title.Render(header),
		s.TitleMuted.Render(" Su  Mo  Tu  We  Th  Fr  Sa"),
	}

	total := dates.DaysInMonth(d.picker.ViewYear, d.picker.ViewMonth)
	first := dates.FirstWeekday(d.picker.ViewYear, d.picker.ViewMonth)

	var row []string
	for i := 0; i < first; i++ {
		row = append(row, s.Day.Render(" "))
	}

	for day := 1; day <= total; day++ {
		cell := fmt.Sprintf("%d", day)
		cellDate := time.Date(d.picker.ViewYear, time.Month(d.picker.ViewMonth+1), day, 0, 0, 0, 0, now.Location())

		style := s.Day
		switch {
		case day == d.dayCursor:
			style = s.DayCursor
		case d.value == dates.FormatISO(d.picker.ViewYear, d.picker.ViewMonth, day):
			style = s.DaySelected
		case dates.SameDay(cellDate, now):
			style = s.DayToday
		}
		row = append(row, style.Render(cell))

		if (first+day)%7 == 0 || day == total {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	lines = append(lines, s.TitleMuted.Render("[/]: month  m: months  ↵: select"))
	return strings.Join(lines, "\n")
}

func (d *DatePicker) viewMonths() string {
	s := d.styles

	lines := []string{s.Title.Render(fmt.Sprintf("%d", d.picker.ViewYear))}
	var row []string
	for i, m := range monthNames {
		style := s.Day
		if i == d.monthCursor {
			style = s.DayCursor
		} else if i == d.picker.ViewMonth {
			style = s.DaySelected
		}
		row = append(row, style.Width(6).Render(m[:3]))
		if (i+1)%3 == 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	lines = append(lines, s.TitleMuted.Render("y: years  ↵: select  esc: days"))
	return strings.Join(lines, "\n")
}

func (d *DatePicker) viewYears() string {
	s := d.styles
	years := calendar.YearRange(d.clock())

	lines := []string{s.Title.Render("Select Year")}
	var row []string
	for i, y := range years {
		style := s.Day
		if i == d.yearCursor {
			style = s.DayCursor
		} else if y == d.picker.ViewYear {
			style = s.DaySelected
		}
		row = append(row, style.Width(6).Render(fmt.Sprintf("%d", y)))
		if (i+1)%4 == 0 || i == len(years)-1 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	lines = append(lines, s.TitleMuted.Render("↵: select  esc: months"))
	return strings.Join(lines, "\n")
}
