package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pcnlabs/pcn/internal/assemble"
	"github.com/pcnlabs/pcn/internal/derive"
	"github.com/pcnlabs/pcn/internal/models"
	"github.com/pcnlabs/pcn/internal/store"
	"github.com/pcnlabs/pcn/internal/ui/keys"
	"github.com/pcnlabs/pcn/internal/ui/styles"
)

// Form focus slots, cycled with tab
const (
	fieldName = iota
	fieldCompany
	fieldBudget
	fieldLeader
	fieldStaff
	fieldDeadline
	fieldPriority
	fieldCreate
	fieldCount
)

var priorities = []models.Priority{
	models.PriorityHigh,
	models.PriorityMedium,
	models.PriorityLow,
}

// CreateView is the new-entity form
type CreateView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap
	clock  func() time.Time

	width  int
	height int

	name     textinput.Model
	company  textinput.Model
	budget   textinput.Model
	leader   textinput.Model
	staff    textinput.Model
	picker   *DatePicker
	priority models.Priority
	focusIdx int
}

// NewCreateView creates a blank entity form
func NewCreateView(st *store.Store, clock func() time.Time) *CreateView {
	name := textinput.New()
	name.Placeholder = "e.g. Q4 Infrastructure Scaling"
	name.CharLimit = 100

	company := textinput.New()
	company.Placeholder = "e.g. TechCorp Solutions"
	company.CharLimit = 100

	budget := textinput.New()
	budget.Placeholder = "250000"
	budget.CharLimit = 20

	leader := textinput.New()
	leader.Placeholder = "Assign a lead strategist"
	leader.CharLimit = 100

	staff := textinput.New()
	staff.Placeholder = "Staff names, comma separated"
	staff.CharLimit = 300

	v := &CreateView{
		store:    st,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		clock:    clock,
		name:     name,
		company:  company,
		budget:   budget,
		leader:   leader,
		staff:    staff,
		picker:   NewDatePicker("", clock),
		priority: models.PriorityLow,
	}
	v.name.Focus()
	return v
}

// ProjectCreated signals a successful submission
type ProjectCreated struct {
	Project models.Project
}

// CancelCreate signals the form was discarded
type CancelCreate struct{}

// Init initializes the view
func (v *CreateView) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (v *CreateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.updateKey(msg)
	}
	return v, nil
}

func (v *CreateView) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open picker owns the keyboard until it commits or dismisses
	if v.picker.IsOpen() {
		committed, handled := v.picker.Update(msg)
		if committed != "" {
			v.applyDeadline(committed)
		}
		if handled {
			return v, nil
		}
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return CancelCreate{} }

	case msg.String() == "ctrl+s":
		return v, v.submit()

	case key.Matches(msg, v.keys.Tab):
		v.picker.Dismiss()
		v.focusIdx = (v.focusIdx + 1) % fieldCount
		v.updateFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.picker.Dismiss()
		v.focusIdx = (v.focusIdx + fieldCount - 1) % fieldCount
		v.updateFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focusIdx {
		case fieldDeadline:
			v.picker.Toggle()
			return v, nil
		case fieldCreate:
			return v, v.submit()
		default:
			v.focusIdx++
			v.updateFocus()
			return v, nil
		}

	case key.Matches(msg, v.keys.Left), key.Matches(msg, v.keys.Right):
		// Manual priority choice; overwritten again on the next
		// deadline change, matching the autosuggestion contract.
		if v.focusIdx == fieldPriority {
			v.cyclePriority(msg)
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case fieldName:
		v.name, cmd = v.name.Update(msg)
	case fieldCompany:
		v.company, cmd = v.company.Update(msg)
	case fieldBudget:
		v.budget, cmd = v.budget.Update(msg)
	case fieldLeader:
		v.leader, cmd = v.leader.Update(msg)
	case fieldStaff:
		v.staff, cmd = v.staff.Update(msg)
	case fieldDeadline:
		if msg.String() == " " {
			v.picker.Toggle()
		}
	}
	return v, cmd
}

// applyDeadline stores the committed date and re-runs the priority
// suggestion, replacing whatever was selected before.
func (v *CreateView) applyDeadline(date string) {
	if suggested, ok := derive.SuggestPriority(date, v.clock()); ok {
		v.priority = suggested
	}
}

func (v *CreateView) cyclePriority(msg tea.KeyMsg) {
	idx := 0
	for i, p := range priorities {
		if p == v.priority {
			idx = i
			break
		}
	}
	if key.Matches(msg, v.keys.Left) {
		idx = (idx + len(priorities) - 1) % len(priorities)
	} else {
		idx = (idx + 1) % len(priorities)
	}
	v.priority = priorities[idx]
}

func (v *CreateView) updateFocus() {
	v.name.Blur()
	v.company.Blur()
	v.budget.Blur()
	v.leader.Blur()
	v.staff.Blur()

	switch v.focusIdx {
	case fieldName:
		v.name.Focus()
	case fieldCompany:
		v.company.Focus()
	case fieldBudget:
		v.budget.Focus()
	case fieldLeader:
		v.leader.Focus()
	case fieldStaff:
		v.staff.Focus()
	}
}

func (v *CreateView) submit() tea.Cmd {
	form := assemble.Form{
		Name:     v.name.Value(),
		Company:  v.company.Value(),
		Leader:   v.leader.Value(),
		Staff:    v.staff.Value(),
		Deadline: v.picker.Value(),
		Priority: v.priority,
		Budget:   v.budget.Value(),
	}
	project := assemble.Build(form, v.clock())

	return func() tea.Msg {
		if err := v.store.InsertProject(project); err != nil {
			return err
		}
		if err := v.store.NotifyProjectCreated(project.Name); err != nil {
			return err
		}
		return ProjectCreated{Project: project}
	}
}

// View renders the form
func (v *CreateView) View() string {
	s := v.styles

	inputStyle := func(idx int, view string) string {
		if v.focusIdx == idx {
			return s.InputFocused.Render(view)
		}
		return s.Input.Render(view)
	}

	var priorityCells []string
	for _, p := range priorities {
		style := s.Button
		if p == v.priority {
			style = v.priorityButtonStyle(p)
		}
		if v.focusIdx == fieldPriority && p == v.priority {
			style = style.Underline(true)
		}
		priorityCells = append(priorityCells, style.Render(string(p)))
	}

	createBtn := s.Button.Render(" Create Entity ")
	if v.focusIdx == fieldCreate {
		createBtn = s.ButtonFocused.Render(" Create Entity ")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Initiate New Entity"),
		s.TitleMuted.Render("Configure strategic parameters for the new project cycle."),
		"",
		"Project Name:",
		inputStyle(fieldName, v.name.View()),
		"Associated Company:",
		inputStyle(fieldCompany, v.company.View()),
		"Allocated Budget:",
		inputStyle(fieldBudget, v.budget.View()),
		"Project Leader:",
		inputStyle(fieldLeader, v.leader.View()),
		"Involved Staff:",
		inputStyle(fieldStaff, v.staff.View()),
		"Target Deadline:",
		v.picker.View(v.focusIdx == fieldDeadline),
		"Priority Level:",
		lipgloss.JoinHorizontal(lipgloss.Top, priorityCells...),
		s.TitleMuted.Render("Suggested automatically from deadline proximity."),
		"",
		createBtn,
		"",
		s.TitleMuted.Render(fmt.Sprintf("%s next · %s save · %s cancel",
			s.HelpKey.Render("tab"),
			s.HelpKey.Render("ctrl+s"),
			s.HelpKey.Render("esc"),
		)),
	)

	contentWidth := styles.ContentWidth(v.width)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *CreateView) priorityButtonStyle(p models.Priority) lipgloss.Style {
	base := v.styles.Button
	switch p {
	case models.PriorityHigh:
		return base.BorderForeground(styles.Current.Error).Foreground(styles.Current.Error)
	case models.PriorityMedium:
		return base.BorderForeground(styles.Current.Warning).Foreground(styles.Current.Warning)
	}
	return base.BorderForeground(styles.Current.Success).Foreground(styles.Current.Success)
}
