package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/components/status"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/keymap"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/messages"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/styles"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/views/logs"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui/views/overview"
)

// App is the dashboard application following the Elm architecture.
// It composes the overview panel and the question log table, each with
// its own independent fetch lifecycle. Neither panel's failure affects
// the other.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the dashboard keybindings.
	keymap *keymap.KeyMap

	// overviewView is the summary statistics panel.
	overviewView *overview.View

	// logsView is the question log table.
	logsView *logs.View

	// statusBar shows state and keybinding hints.
	statusBar *status.Bar

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new dashboard application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		overviewView: overview.NewView(s, ports.Overview),
		logsView:     logs.NewView(s, ports.Logs),
		statusBar:    status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It starts both panel fetches and enters
// the alternate screen.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StateRefreshing)
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("raglab - RAG Dashboard"),
		a.overviewView.Init(),
		a.logsView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.overviewView.SetDimensions(msg.Width, msg.Height)
		a.logsView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Refresh):
			a.statusBar.SetState(status.StateRefreshing)
			return a, tea.Batch(a.overviewView.Refresh(), a.logsView.Refresh())
		}
		// Scrolling keys go to the log table.
		a.logsView, cmd = a.logsView.Update(msg)
		return a, cmd

	case messages.OverviewLoaded:
		a.overviewView, cmd = a.overviewView.Update(msg)
		a.syncStatus()
		return a, cmd

	case messages.LogsLoaded:
		a.logsView, cmd = a.logsView.Update(msg)
		a.syncStatus()
		return a, cmd
	}

	return a, nil
}

// syncStatus updates the status bar once both fetches have settled.
func (a *App) syncStatus() {
	if !a.overviewView.Loading() && !a.logsView.Loading() {
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetLastRefresh(time.Now())
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return a.styles.Title.Render("raglab dashboard") + "\n\n" +
		a.overviewView.View() + "\n" +
		a.logsView.View() + "\n" +
		a.statusBar.View()
}

// Run starts the dashboard.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// OverviewView returns the overview panel (for testing).
func (a *App) OverviewView() *overview.View {
	return a.overviewView
}

// LogsView returns the log table (for testing).
func (a *App) LogsView() *logs.View {
	return a.logsView
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.overviewView.SetDimensions(width, height)
	a.logsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
