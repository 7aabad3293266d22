package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pcnlabs/pcn/internal/dates"
	"github.com/pcnlabs/pcn/internal/models"
	"github.com/pcnlabs/pcn/internal/store"
	"github.com/pcnlabs/pcn/internal/ui/keys"
	"github.com/pcnlabs/pcn/internal/ui/styles"
)

// DetailView shows one project's metrics and calendar notes
type DetailView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	clock  func() time.Time

	width   int
	height  int
	project models.Project

	addingNote bool
	noteInput  textinput.Model
}

// NewDetailView creates a detail view for the given project
func NewDetailView(st *store.Store, project models.Project, clock func() time.Time) *DetailView {
	note := textinput.New()
	note.Placeholder = "Add a calendar note for today..."
	note.CharLimit = 200

	return &DetailView{
		store:     st,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		clock:     clock,
		project:   project,
		noteInput: note,
	}
}

// BackToDashboard signals to return to the workspace
type BackToDashboard struct{}

type projectReloadedMsg struct {
	project models.Project
}

// Init initializes the view
func (v *DetailView) Init() tea.Cmd {
	return v.reload
}

func (v *DetailView) reload() tea.Msg {
	p, err := v.store.GetProject(v.project.ID)
	if err != nil {
		return err
	}
	return projectReloadedMsg{project: *p}
}

// Update handles messages
func (v *DetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case projectReloadedMsg:
		v.project = msg.project
		return v, nil

	case tea.KeyMsg:
		if v.addingNote {
			return v.updateAddingNote(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *DetailView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToDashboard{} }

	case key.Matches(msg, v.keys.AddNote):
		v.addingNote = true
		v.noteInput.Reset()
		v.noteInput.Focus()
		return v, textinput.Blink

	case msg.String() == "s":
		next := nextStatus(v.project.Status)
		return v, func() tea.Msg {
			if err := v.store.UpdateProjectStatus(v.project.ID, next); err != nil {
				return err
			}
			return v.reload()
		}

	case msg.String() == "p":
		next := nextPriority(v.project.Priority)
		return v, func() tea.Msg {
			if err := v.store.UpdateProjectPriority(v.project.ID, next); err != nil {
				return err
			}
			return v.reload()
		}
	}
	return v, nil
}

func nextStatus(s models.Status) models.Status {
	order := []models.Status{
		models.StatusActive,
		models.StatusInReview,
		models.StatusCompleted,
		models.StatusOnHold,
	}
	for i, st := range order {
		if st == s {
			return order[(i+1)%len(order)]
		}
	}
	return models.StatusActive
}

func nextPriority(p models.Priority) models.Priority {
	switch p {
	case models.PriorityHigh:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityLow
	}
	return models.PriorityHigh
}

func (v *DetailView) updateAddingNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.addingNote = false
		v.noteInput.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		text := strings.TrimSpace(v.noteInput.Value())
		v.addingNote = false
		v.noteInput.Blur()
		if text == "" {
			return v, nil
		}
		note := models.CalendarNote{
			ID:     uuid.NewString(),
			Date:   dates.FormatISODate(v.clock()),
			Note:   text,
			Author: v.project.Owner,
		}
		return v, func() tea.Msg {
			if err := v.store.AddNote(v.project.ID, note); err != nil {
				return err
			}
			return v.reload()
		}
	}

	var cmd tea.Cmd
	v.noteInput, cmd = v.noteInput.Update(msg)
	return v, cmd
}

// View renders the detail view
func (v *DetailView) View() string {
	s := v.styles
	p := v.project

	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		v.metric("Involved Team", fmt.Sprintf("%d", p.TeamSize)),
		v.metric("Est. Budget", fmt.Sprintf("$%.0f", p.Budget)),
		v.metric("Product Value", fmt.Sprintf("$%.0f", p.MarketValue)),
		v.metric("Open Requests", fmt.Sprintf("%d", p.BusinessRequests)),
	)

	noteLines := []string{s.Title.Render("Calendar Notes")}
	if len(p.CalendarNotes) == 0 {
		noteLines = append(noteLines, s.TitleMuted.Render("No notes yet."))
	}
	for _, n := range p.CalendarNotes {
		noteLines = append(noteLines, fmt.Sprintf("%s  %s  %s",
			s.HelpKey.Render(n.Date),
			n.Note,
			s.TitleMuted.Render("— "+n.Author),
		))
	}
	if v.addingNote {
		noteLines = append(noteLines, s.InputFocused.Render(v.noteInput.View()))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(p.Name),
		s.TitleMuted.Render(fmt.Sprintf("%s · %s · deadline %s · %s",
			p.Company, p.Owner, p.Deadline, p.UpdatedAt)),
		fmt.Sprintf("%s  %s  progress %d%%",
			v.statusBadge(p.Status),
			v.priorityBadge(p.Priority),
			p.Progress,
		),
		"",
		metrics,
		"",
		strings.Join(noteLines, "\n"),
		"",
		s.Help.Render(fmt.Sprintf("%s add note · %s status · %s priority · %s back · %s quit",
			s.HelpKey.Render("a"),
			s.HelpKey.Render("s"),
			s.HelpKey.Render("p"),
			s.HelpKey.Render("esc"),
			s.HelpKey.Render("q"),
		)),
	)

	return styles.CenterView(content, v.width, v.height)
}

func (v *DetailView) metric(label, value string) string {
	s := v.styles
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.TitleMuted.Render(label),
		s.Title.Render(value),
	))
}

func (v *DetailView) statusBadge(status models.Status) string {
	switch status {
	case models.StatusActive:
		return v.styles.BadgeActive.Render(string(status))
	case models.StatusInReview:
		return v.styles.BadgeReview.Render(string(status))
	case models.StatusOnHold:
		return v.styles.BadgeHold.Render(string(status))
	}
	return v.styles.BadgeDone.Render(string(status))
}

func (v *DetailView) priorityBadge(priority models.Priority) string {
	switch priority {
	case models.PriorityHigh:
		return v.styles.PriorityHigh.Render(string(priority))
	case models.PriorityMedium:
		return v.styles.PriorityMed.Render(string(priority))
	}
	return v.styles.PriorityLow.Render(string(priority))
}
