package keywords

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestView_RendersLists(t *testing.T) {
	lists := domain.KeywordLists{
		Suspicious: []string{"dummy", "sample"},
		Authentic:  []string{"registrar"},
		Degrees:    []string{"PhD"},
	}
	v := NewView(nil, lists)
	v.SetDimensions(80, 40)

	view := v.View()
	assert.Contains(t, view, "Suspicious (2)")
	assert.Contains(t, view, "Authentic (1)")
	assert.Contains(t, view, "Degrees (1)")
	assert.Contains(t, view, "registrar")
	assert.Contains(t, view, "PhD")
	assert.Nil(t, v.Init())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, domain.DefaultKeywordLists())
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, domain.DefaultKeywordLists())
	v, _ = v.Update(tea.WindowSizeMsg{Width: 100, Height: 2})
	assert.Equal(t, 100, v.viewport.Width)
	assert.Equal(t, 3, v.viewport.Height)
}
