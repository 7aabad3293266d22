package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pcnlabs/pcn/internal/derive"
	"github.com/pcnlabs/pcn/internal/models"
	"github.com/pcnlabs/pcn/internal/store"
	"github.com/pcnlabs/pcn/internal/themegen"
	"github.com/pcnlabs/pcn/internal/ui/keys"
	"github.com/pcnlabs/pcn/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// DashboardView is the main workspace: the sortable, searchable project
// inventory plus the notification panel and activity feed.
type DashboardView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	clock  func() time.Time

	width  int
	height int
	loaded bool

	projects      []models.Project
	activity      []models.Activity
	notifications []models.AppNotification

	// UI state
	cursor      int
	scrollY     int
	searching   bool
	searchInput textinput.Model
	sortCfg     *derive.SortConfig

	// Notification panel overlay
	notifOpen bool

	// Theme generation
	themePromptOpen bool
	themeInput      textinput.Model
	generating      bool
	statusMsg       string
}

// NewDashboardView creates the workspace view
func NewDashboardView(st *store.Store, clock func() time.Time) *DashboardView {
	search := textinput.New()
	search.Placeholder = "Search projects..."
	search.CharLimit = 100

	theme := textinput.New()
	theme.Placeholder = "Describe a theme, e.g. calm fintech blue"
	theme.CharLimit = 120

	return &DashboardView{
		store:       st,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		clock:       clock,
		searchInput: search,
		themeInput:  theme,
	}
}

// SelectedProject signals that a project was opened
type SelectedProject struct {
	Project models.Project
}

// OpenCreate signals that the creation form should open
type OpenCreate struct{}

type projectsLoadedMsg struct {
	projects []models.Project
}

type activityLoadedMsg struct {
	activity []models.Activity
}

type notificationsLoadedMsg struct {
	notifications []models.AppNotification
}

type themeGeneratedMsg struct {
	theme themegen.Generated
}

// Init loads the dataset
func (v *DashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadProjects, v.loadActivity, v.loadNotifications)
}

func (v *DashboardView) loadProjects() tea.Msg {
	projects, err := v.store.ListProjects()
	if err != nil {
		return err
	}
	return projectsLoadedMsg{projects: projects}
}

func (v *DashboardView) loadActivity() tea.Msg {
	feed, err := v.store.ListActivity()
	if err != nil {
		return err
	}
	return activityLoadedMsg{activity: feed}
}

func (v *DashboardView) loadNotifications() tea.Msg {
	notifs, err := v.store.ListNotifications()
	if err != nil {
		return err
	}
	return notificationsLoadedMsg{notifications: notifs}
}

// visible recomputes the filtered, sorted list from the committed state.
// Always derived fresh so the table can never drift from the source.
func (v *DashboardView) visible() []models.Project {
	return derive.Display(v.projects, v.searchInput.Value(), v.sortCfg)
}

// Update handles messages
func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case projectsLoadedMsg:
		v.projects = msg.projects
		v.loaded = true
		if v.cursor >= len(v.projects) {
			v.cursor = max(0, len(v.projects)-1)
		}
		return v, nil

	case activityLoadedMsg:
		v.activity = msg.activity
		return v, nil

	case notificationsLoadedMsg:
		v.notifications = msg.notifications
		return v, nil

	case themeGeneratedMsg:
		v.generating = false
		styles.ApplyGenerated(msg.theme)
		v.styles = styles.NewStyles()
		v.statusMsg = msg.theme.Rationale
		return v, nil

	case tea.KeyMsg:
		if v.notifOpen {
			return v.updateNotifications(msg)
		}
		if v.themePromptOpen {
			return v.updateThemePrompt(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *DashboardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input swallows everything except blur/confirm keys
	if v.searching {
		switch {
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
			v.searching = false
			v.searchInput.Blur()
			v.cursor = 0
			v.scrollY = 0
			return v, nil
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			v.cursor = 0
			v.scrollY = 0
			return v, cmd
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.visible())-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		items := v.visible()
		if v.cursor < len(items) {
			project := items[v.cursor]
			return v, func() tea.Msg {
				return SelectedProject{Project: project}
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		return v, func() tea.Msg { return OpenCreate{} }

	case key.Matches(msg, v.keys.Notifications):
		v.notifOpen = true
		return v, nil

	case key.Matches(msg, v.keys.Theme):
		v.themePromptOpen = true
		v.themeInput.Reset()
		v.themeInput.Focus()
		return v, textinput.Blink
	}

	// Number keys toggle column sorts, the header-click cycle
	if sortKey, ok := sortColumns[msg.String()]; ok {
		cfg := derive.RequestSort(v.sortCfg, sortKey)
		v.sortCfg = &cfg
		return v, nil
	}

	return v, nil
}

// sortColumns maps number keys to table columns
var sortColumns = map[string]derive.SortKey{
	"1": derive.SortByName,
	"2": derive.SortByStatus,
	"3": derive.SortByOwner,
	"4": derive.SortByPriority,
	"5": derive.SortByBudget,
	"6": derive.SortByDeadline,
}

// updateNotifications handles keys while the panel overlay is open.
// Any key that isn't a panel action counts as interacting outside the
// panel and dismisses it.
func (v *DashboardView) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.MarkRead):
		return v, func() tea.Msg {
			if err := v.store.MarkAllRead(); err != nil {
				return err
			}
			return v.loadNotifications()
		}
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}

	v.notifOpen = false
	return v, nil
}

func (v *DashboardView) updateThemePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.themePromptOpen = false
		v.themeInput.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		prompt := strings.TrimSpace(v.themeInput.Value())
		v.themePromptOpen = false
		v.themeInput.Blur()
		if prompt == "" {
			return v, nil
		}
		v.generating = true
		v.statusMsg = "Generating theme..."
		// One request in flight at a time; the fixed delay models the
		// latency of the real generation service.
		return v, tea.Tick(themegen.LatencyMillis*time.Millisecond, func(time.Time) tea.Msg {
			return themeGeneratedMsg{theme: themegen.FromPrompt(prompt)}
		})
	}

	var cmd tea.Cmd
	v.themeInput, cmd = v.themeInput.Update(msg)
	return v, cmd
}

func (v *DashboardView) ensureVisible() {
	availableHeight := v.height - 14
	if availableHeight < 1 {
		availableHeight = 1
	}
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+availableHeight {
		v.scrollY = v.cursor - availableHeight + 1
	}
}

// View renders the dashboard
func (v *DashboardView) View() string {
	if !v.loaded {
		return v.styles.TitleMuted.Render("Loading...")
	}

	if v.notifOpen {
		return v.renderNotifications()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		v.renderHeader(),
		v.renderSearch(),
		v.renderTable(),
		v.renderActivity(),
		v.renderStatusBar(),
	)
	return styles.CenterView(content, v.width, v.height)
}

func (v *DashboardView) renderHeader() string {
	s := v.styles

	active := 0
	review := 0
	for _, p := range v.projects {
		switch p.Status {
		case models.StatusActive:
			active++
		case models.StatusInReview:
			review++
		}
	}

	bell := "b: notifications"
	if hasUnread(v.notifications) {
		bell = s.UnreadBadge.Render("● ") + "b: notifications"
	}

	left := s.Title.Render("PCN Connect") + "  " +
		s.TitleMuted.Render(fmt.Sprintf("%d active · %d in review", active, review))
	return left + "   " + s.TitleMuted.Render(bell)
}

func hasUnread(notifs []models.AppNotification) bool {
	for _, n := range notifs {
		if !n.IsRead {
			return true
		}
	}
	return false
}

func (v *DashboardView) renderSearch() string {
	s := v.styles
	if v.searching {
		return s.InputFocused.Render(v.searchInput.View())
	}
	query := v.searchInput.Value()
	if query == "" {
		return s.Input.Render(s.TitleMuted.Render("/ to search"))
	}
	return s.Input.Render(query)
}

type column struct {
	label string
	key   derive.SortKey
	width int
}

var tableColumns = []column{
	{"1:Project", derive.SortByName, 26},
	{"2:Status", derive.SortByStatus, 11},
	{"3:Owner", derive.SortByOwner, 14},
	{"4:Priority", derive.SortByPriority, 10},
	{"5:Budget", derive.SortByBudget, 12},
	{"6:Deadline", derive.SortByDeadline, 12},
}

func (v *DashboardView) renderTable() string {
	s := v.styles
	items := v.visible()

	var header []string
	for _, col := range tableColumns {
		label := col.label
		style := s.TableHeader
		if v.sortCfg != nil && v.sortCfg.Key == col.key {
			style = s.TableHeaderSort
			if v.sortCfg.Direction == derive.Asc {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}
		header = append(header, style.Width(col.width).Render(label))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	if len(items) == 0 {
		query := strings.TrimSpace(v.searchInput.Value())
		lines = append(lines, "", s.TitleMuted.Render(
			fmt.Sprintf("No projects or staff matching %q.", query)))
		return strings.Join(lines, "\n")
	}

	availableHeight := clamp(v.height-14, 1, len(items))
	end := clamp(v.scrollY+availableHeight, 0, len(items))

	for i := v.scrollY; i < end; i++ {
		p := items[i]
		cells := []string{
			truncate(p.Name, 24),
			string(p.Status),
			truncate(p.Owner, 13),
			string(p.Priority),
			fmt.Sprintf("$%.0f", p.Budget),
			p.Deadline,
		}

		var row []string
		for c, cell := range cells {
			style := s.Row
			if i == v.cursor {
				style = s.RowSelected
			} else {
				switch c {
				case 1:
					style = v.statusStyle(p.Status)
				case 3:
					style = v.priorityStyle(p.Priority)
				}
			}
			row = append(row, style.Width(tableColumns[c].width).Render(cell))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(lines, "\n")
}

func (v *DashboardView) statusStyle(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusActive:
		return v.styles.BadgeActive
	case models.StatusInReview:
		return v.styles.BadgeReview
	case models.StatusOnHold:
		return v.styles.BadgeHold
	}
	return v.styles.BadgeDone
}

func (v *DashboardView) priorityStyle(priority models.Priority) lipgloss.Style {
	switch priority {
	case models.PriorityHigh:
		return v.styles.PriorityHigh
	case models.PriorityMedium:
		return v.styles.PriorityMed
	}
	return v.styles.PriorityLow
}

func (v *DashboardView) renderActivity() string {
	s := v.styles

	lines := []string{"", s.Title.Render("Team Collaboration")}
	for _, a := range v.activity {
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			s.HelpKey.Render(a.User),
			a.Action,
			s.Title.Render(a.Target),
			s.TitleMuted.Render(a.Timestamp),
		))
	}
	return strings.Join(lines, "\n")
}

func (v *DashboardView) renderNotifications() string {
	s := v.styles

	lines := []string{s.Title.Render("Activity Feed"), ""}
	for _, n := range v.notifications {
		marker := s.UnreadBadge.Render("●")
		msgStyle := s.Row
		if n.IsRead {
			marker = s.ReadDim.Render("○")
			msgStyle = s.ReadDim
		}
		lines = append(lines,
			fmt.Sprintf("%s %s", marker, msgStyle.Render(truncate(n.Message, 70))),
			"  "+s.TitleMuted.Render(fmt.Sprintf("%s · %s", n.Type, n.Timestamp)),
		)
	}
	lines = append(lines, "", s.TitleMuted.Render("r: read all · any key: close"))

	panel := s.PanelFocused.Render(strings.Join(lines, "\n"))
	contentWidth := styles.ContentWidth(v.width)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		panel,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *DashboardView) renderStatusBar() string {
	s := v.styles

	if v.themePromptOpen {
		return s.InputFocused.Render(v.themeInput.View())
	}
	if v.generating {
		return s.StatusBar.Render("Generating theme...")
	}
	if v.statusMsg != "" {
		return s.StatusBar.Render(truncate(v.statusMsg, 96))
	}

	return s.Help.Render(fmt.Sprintf(
		"%s select · %s new · %s search · %s notif · %s theme · %s sort · %s quit",
		s.HelpKey.Render("↵"),
		s.HelpKey.Render("n"),
		s.HelpKey.Render("/"),
		s.HelpKey.Render("b"),
		s.HelpKey.Render("t"),
		s.HelpKey.Render("1-6"),
		s.HelpKey.Render("q"),
	))
}

func truncate(text string, width int) string {
	if len(text) <= width {
		return text
	}
	if width <= 1 {
		return text[:width]
	}
	return text[:width-1] + "…"
}
