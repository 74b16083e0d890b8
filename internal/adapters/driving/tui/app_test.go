package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(NewPorts(&mockAnalysisService{}, &mockSettingsService{}))
	require.NoError(t, err)
	return app
}

func update(t *testing.T, app *App, msg tea.Msg) (*App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	updated, ok := model.(*App)
	require.True(t, ok)
	return updated, cmd
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
	assert.NotNil(t, app.Init())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingAnalysisService)
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t)
	app, cmd := update(t, app, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Analyse certificate")
	assert.Contains(t, app.View(), "Ready")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)
	_, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t)
	_, cmd := update(t, app, messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Navigation(t *testing.T) {
	tests := []struct {
		view     messages.ViewType
		contains string
	}{
		{messages.ViewAnalyze, "File:"},
		{messages.ViewKeywords, "Suspicious"},
		{messages.ViewSettings, "Settings"},
		{messages.ViewHelp, "new analysis"},
		{messages.ViewMenu, "certcheck"},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			app := newTestApp(t)
			app.SetDimensions(100, 40)

			app, _ = update(t, app, messages.ViewChanged{View: tt.view})
			assert.Equal(t, tt.view, app.CurrentView())
			assert.Contains(t, app.View(), tt.contains)
		})
	}
}

func TestApp_HelpEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(100, 40)
	app, _ = update(t, app, messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, status.StateHelp, app.statusBar.State())

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_AnalysisCompletedUpdatesStatus(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(120, 40)
	app, _ = update(t, app, messages.ViewChanged{View: messages.ViewAnalyze})

	analysis := &domain.DocumentAnalysis{
		URI:    "/certs/degree.pdf",
		Report: domain.AnalysisReport{Score: 40, Verdict: domain.VerdictFake},
	}
	app, _ = update(t, app, messages.AnalysisCompleted{Analysis: analysis})

	assert.Equal(t, status.StateReport, app.statusBar.State())
	assert.Equal(t, "degree.pdf: 40/100 Likely Fake", app.statusBar.Message())
	assert.NoError(t, app.Err())
}

func TestApp_AnalysisFailedShowsError(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(120, 40)
	app, _ = update(t, app, messages.ViewChanged{View: messages.ViewAnalyze})

	app, _ = update(t, app, messages.AnalysisCompleted{Err: errors.New("no such file")})
	assert.Equal(t, status.StateError, app.statusBar.State())
	assert.EqualError(t, app.Err(), "no such file")
}

func TestApp_SettingsMessagesForwarded(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(120, 40)
	app, cmd := update(t, app, messages.ViewChanged{View: messages.ViewSettings})
	require.NotNil(t, cmd)

	app, _ = update(t, app, cmd())
	assert.Contains(t, app.View(), "tesseract")
}

func TestReportSummary(t *testing.T) {
	assert.Empty(t, reportSummary(nil))
}
