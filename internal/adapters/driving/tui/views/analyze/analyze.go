// Package analyze provides the certificate analysis view for the TUI.
package analyze

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/filesource"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
	"github.com/custodia-labs/certcheck/internal/report"
)

type mode int

const (
	modeInput mode = iota
	modeAnalysing
	modeReport
)

// chrome is the number of rows used by the title, input and spacing.
const chrome = 6

// View lets the user enter a certificate path and browse the resulting report.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	service  driving.AnalysisService
	input    *input.PathInput
	viewport viewport.Model
	ctx      context.Context

	mode     mode
	path     string
	analysis *domain.DocumentAnalysis
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new analysis view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.AnalysisService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		service:  service,
		input:    input.NewPathInput(s),
		viewport: viewport.New(80, 24-chrome),
		ctx:      context.Background(),
		mode:     modeInput,
		width:    80,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the analysis view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AnalysisCompleted:
		return v.handleCompleted(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.mode == modeInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleCompleted(msg messages.AnalysisCompleted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.mode = modeInput
		v.input.Focus()
		return v, func() tea.Msg { return messages.ErrorOccurred{Err: msg.Err} }
	}

	v.err = nil
	v.analysis = msg.Analysis
	v.mode = modeReport
	v.input.Blur()
	v.viewport.SetContent(v.renderReport())
	v.viewport.GotoTop()
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch v.mode {
	case modeAnalysing:
		return v, nil

	case modeReport:
		switch {
		case keymap.Matches(keyStr, v.keymap.New):
			v.Reset()
			return v, v.input.Focus()
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, backToMenu
		}
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, backToMenu
	case keymap.Matches(keyStr, v.keymap.Analyze):
		path := strings.TrimSpace(v.input.Value())
		if path == "" {
			return v, nil
		}
		v.path = path
		v.err = nil
		v.mode = modeAnalysing
		return v, v.analyse(path)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}

// analyse loads and analyses the file at path off the update loop.
func (v *View) analyse(path string) tea.Cmd {
	ctx := v.ctx
	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.AnalysisCompleted{Err: ErrNoAnalysisService}
		}

		raw, err := filesource.Load(path)
		if err != nil {
			return messages.AnalysisCompleted{Err: err}
		}

		analysis, err := service.AnalyzeDocument(ctx, raw)
		return messages.AnalysisCompleted{Analysis: analysis, Err: err}
	}
}

// View renders the analysis view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Analyse certificate"))
	b.WriteString("\n\n")

	switch v.mode {
	case modeAnalysing:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Analysing %s...", v.path)))
	case modeReport:
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render(fmt.Sprintf("%3.f%%  [n] New  [j/k] Scroll  [Esc] Menu",
			v.viewport.ScrollPercent()*100)))
	default:
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(v.styles.Help.Render("[Enter] Analyse  [Esc] Menu"))
	}

	return b.String()
}

func (v *View) renderReport() string {
	a := v.analysis
	if a == nil {
		return ""
	}
	r := a.Report
	label := v.styles.Label.Render

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", label("Certificate"), filepath.Base(a.URI))
	if a.Extractor != "" {
		fmt.Fprintf(&b, "%s %s\n", label("Extractor"), a.Extractor)
	}
	fmt.Fprintf(&b, "%s %3d/100 [%s]\n", label("Score"), r.Score, report.ScoreBar(r.Score, 20))
	fmt.Fprintf(&b, "%s %s\n\n", label("Verdict"), v.styles.Verdict(r.Verdict).Render(r.Verdict.Label()))

	writeList(&b, v.styles, "Suspicious keywords", r.Suspicious.Terms)
	writeList(&b, v.styles, "Missing terms", r.Missing.Terms)
	writeList(&b, v.styles, "Degree keywords", r.Degrees.Terms)
	writeList(&b, v.styles, "Organisations", r.Entities.Organizations)
	writeList(&b, v.styles, "Qualifications", r.Entities.Qualifications)

	if a.HasWarnings() {
		b.WriteString(v.styles.Subtitle.Render("Warnings"))
		b.WriteString("\n")
		for _, w := range a.Warnings {
			b.WriteString(v.styles.Warning.Render("  ! " + w))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Extracted text"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(report.Preview(a.Text)))
	b.WriteString("\n")
	return b.String()
}

func writeList(b *strings.Builder, s *styles.Styles, title string, items []string) {
	b.WriteString(s.Subtitle.Render(title))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(s.Muted.Render("  (none)"))
		b.WriteString("\n\n")
		return
	}
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
	b.WriteString("\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)

	vpHeight := height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = width
	v.viewport.Height = vpHeight
}

// Reset returns the view to the path input.
func (v *View) Reset() {
	v.mode = modeInput
	v.path = ""
	v.analysis = nil
	v.err = nil
	v.input.Reset()
	v.viewport.SetContent("")
}

// Analysis returns the last completed analysis, if any.
func (v *View) Analysis() *domain.DocumentAnalysis {
	return v.analysis
}

// Err returns the last analysis error, if any.
func (v *View) Err() error {
	return v.err
}

// Analysing reports whether an analysis is in flight.
func (v *View) Analysing() bool {
	return v.mode == modeAnalysing
}

// ShowingReport reports whether a completed report is displayed.
func (v *View) ShowingReport() bool {
	return v.mode == modeReport
}
