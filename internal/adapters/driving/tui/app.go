package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/views/analyze"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/views/keywords"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	analyzeView  *analyze.View
	keywordsView *keywords.View
	settingsView *settings.View
	statusBar    *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
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
		menuView:     menu.NewView(s),
		analyzeView:  analyze.NewView(s, km, ports.Analysis),
		keywordsView: keywords.NewView(s, ports.Analysis.Keywords()),
		settingsView: settings.NewView(s, ports.Settings),
		statusBar:    status.NewBar(s, km),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.analyzeView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("certcheck - Certificate Analysis"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewAnalyze:
			a.analyzeView, cmd = a.analyzeView.Update(msg)
			a.syncStatus()
		case messages.ViewKeywords:
			a.keywordsView, cmd = a.keywordsView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				return a.navigate(messages.ViewMenu)
			}
		}
		return a, cmd

	case messages.ViewChanged:
		return a.navigate(msg.View)

	case messages.AnalysisCompleted:
		a.analyzeView, cmd = a.analyzeView.Update(msg)
		a.err = msg.Err
		a.syncStatus()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.syncStatus()
		return a, nil

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink, etc.) to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewAnalyze:
		a.analyzeView, cmd = a.analyzeView.Update(msg)
	case messages.ViewKeywords:
		a.keywordsView, cmd = a.keywordsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}

	return a, cmd
}

func (a *App) navigate(view messages.ViewType) (tea.Model, tea.Cmd) {
	a.currentView = view
	a.statusBar.Clear()

	switch view {
	case messages.ViewAnalyze:
		a.analyzeView.Reset()
		return a, a.analyzeView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a, a.settingsView.Init()
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewMenu, messages.ViewKeywords:
	}
	return a, nil
}

// syncStatus mirrors the analysis view state onto the status bar.
func (a *App) syncStatus() {
	switch {
	case a.analyzeView.Analysing():
		a.statusBar.SetState(status.StateAnalysing)
		a.statusBar.SetMessage("")
	case a.analyzeView.ShowingReport():
		a.statusBar.SetState(status.StateReport)
		a.statusBar.SetMessage(reportSummary(a.analyzeView.Analysis()))
	case a.err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(a.err.Error())
	default:
		a.statusBar.Clear()
	}
}

func reportSummary(analysis *domain.DocumentAnalysis) string {
	if analysis == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d/100 %s",
		filepath.Base(analysis.URI), analysis.Report.Score, analysis.Report.Verdict.Label())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewAnalyze:
		body = a.analyzeView.View()
	case messages.ViewKeywords:
		body = a.keywordsView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	case messages.ViewMenu:
		body = a.menuView.View()
	default:
		body = a.menuView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", a.statusBar.View())
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render(
		"Scores start at 100. Each suspicious keyword costs 15 points and each\n" +
			"missing authentic term costs 10. 80 and above is Likely Genuine,\n" +
			"50 to 79 is Suspicious, below 50 is Likely Fake."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// leave room for the status bar
	viewHeight := height - 2
	a.menuView.SetDimensions(width, viewHeight)
	a.analyzeView.SetDimensions(width, viewHeight)
	a.keywordsView.SetDimensions(width, viewHeight)
	a.settingsView.SetDimensions(width, viewHeight)
	a.statusBar.SetWidth(width)
}
