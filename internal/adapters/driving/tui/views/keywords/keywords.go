// Package keywords provides a read-only view of the active reference lists.
package keywords

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// View lists the suspicious, authentic and degree keyword lists.
type View struct {
	styles   *styles.Styles
	lists    domain.KeywordLists
	viewport viewport.Model

	width  int
	height int
	ready  bool
}

// NewView creates a keywords view over lists.
func NewView(s *styles.Styles, lists domain.KeywordLists) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:   s,
		lists:    lists,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	v.viewport.SetContent(v.render())
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the keywords view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) render() string {
	var b strings.Builder
	section := func(title, hint string, terms []string) {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", title, len(terms))))
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render(hint))
		b.WriteString("\n")
		for _, term := range terms {
			b.WriteString("  " + term + "\n")
		}
		b.WriteString("\n")
	}
	section("Suspicious", "-10 each when present", v.lists.Suspicious)
	section("Authentic", "-5 each when absent", v.lists.Authentic)
	section("Degrees", "reported only", v.lists.Degrees)
	return b.String()
}

// View renders the keywords view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Keywords"))
	b.WriteString("\n\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [Esc] Menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	vpHeight := height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = width
	v.viewport.Height = vpHeight
}
