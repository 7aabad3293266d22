package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pcnlabs/pcn/internal/themegen"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Info:    lipgloss.Color("#7aa2f7"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Current holds the active theme
var Current = TokyoNight

// ApplyGenerated recolors the active theme with a generated palette.
// Only the accent colors change; the base terminal colors stay put so
// text stays readable.
func ApplyGenerated(g themegen.Generated) {
	Current.Name = "Generated"
	Current.Primary = lipgloss.Color(g.Primary)
	Current.Accent = lipgloss.Color(g.Accent)
	Current.BorderFocus = lipgloss.Color(g.Primary)
	Current.Info = lipgloss.Color(g.Primary)
}

// MaxWidth is the maximum content width for the app
const MaxWidth = 100

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds all the pre-computed styles for the UI
type Styles struct {
	// Title bar
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Table
	TableHeader     lipgloss.Style
	TableHeaderSort lipgloss.Style
	Row             lipgloss.Style
	RowSelected     lipgloss.Style

	// Status / priority badges
	BadgeActive   lipgloss.Style
	BadgeReview   lipgloss.Style
	BadgeHold     lipgloss.Style
	BadgeDone     lipgloss.Style
	PriorityHigh  lipgloss.Style
	PriorityMed   lipgloss.Style
	PriorityLow   lipgloss.Style
	UnreadBadge   lipgloss.Style
	ReadDim       lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style

	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	// Input fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Calendar
	Day         lipgloss.Style
	DaySelected lipgloss.Style
	DayToday    lipgloss.Style
	DayCursor   lipgloss.Style

	// Help text
	Help    lipgloss.Style
	HelpKey lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		TableHeader: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Bold(true),

		TableHeaderSort: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),

		Row: lipgloss.NewStyle().
			Foreground(t.Foreground),

		RowSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Bold(true),

		BadgeActive: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		BadgeReview: lipgloss.NewStyle().
			Foreground(t.Info).
			Bold(true),

		BadgeHold: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		BadgeDone: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Bold(true),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		PriorityMed: lipgloss.NewStyle().
			Foreground(t.Warning).
			Bold(true),

		PriorityLow: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		UnreadBadge: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		ReadDim: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Day: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Width(4).
			Align(lipgloss.Center),

		DaySelected: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Width(4).
			Align(lipgloss.Center).
			Bold(true),

		DayToday: lipgloss.NewStyle().
			Foreground(t.Accent).
			Width(4).
			Align(lipgloss.Center).
			Bold(true),

		DayCursor: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Width(4).
			Align(lipgloss.Center).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),
	}
}
