package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pcnlabs/pcn/internal/store"
	"github.com/pcnlabs/pcn/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewDashboard View = iota
	ViewDetail
	ViewCreate
)

type App struct {
	store       *store.Store
	clock       func() time.Time
	currentView View
	dashboard   *views.DashboardView
	detail      *views.DetailView
	create      *views.CreateView
	width       int
	height      int
}

// NewApp creates the application rooted at the dashboard
func NewApp(st *store.Store) *App {
	clock := time.Now
	return &App{
		store:     st,
		clock:     clock,
		dashboard: views.NewDashboardView(st, clock),
	}
}

func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The dashboard persists across views, keep its size current
		a.dashboard.Update(msg)

	case views.SelectedProject:
		a.currentView = ViewDetail
		a.detail = views.NewDetailView(a.store, msg.Project, a.clock)
		return a, tea.Batch(a.detail.Init(), a.resize())

	case views.OpenCreate:
		a.currentView = ViewCreate
		a.create = views.NewCreateView(a.store, a.clock)
		return a, tea.Batch(a.create.Init(), a.resize())

	case views.ProjectCreated:
		a.currentView = ViewDashboard
		return a, tea.Batch(a.dashboard.Init(), a.resize())

	case views.CancelCreate, views.BackToDashboard:
		a.currentView = ViewDashboard
		return a, tea.Batch(a.dashboard.Init(), a.resize())
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewDetail:
		if a.detail != nil {
			return a.detail.View()
		}
	case ViewCreate:
		if a.create != nil {
			return a.create.View()
		}
	}
	return a.dashboard.View()
}
