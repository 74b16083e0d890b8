// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
)

// ErrNoSettingsService is returned when settings are requested without a service.
var ErrNoSettingsService = errors.New("settings service not available")

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionOCREngine
	SectionNERProvider
)

// View shows the current settings and lets the user switch the OCR
// engine and entity recogniser.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.Settings
	path     string
	err      error
	notice   string

	section  Section
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
	}
}

// Init loads the settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Path: svc.Path(), Err: err}
	}
}

func (v *View) save(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.path = msg.Path
		v.err = nil
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = "Saved. Restart certcheck to apply."
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if v.section == SectionOverview {
		switch keyStr {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "o":
			v.enter(SectionOCREngine)
		case "n":
			v.enter(SectionNERProvider)
		}
		return v, nil
	}

	options := v.options()
	switch keyStr {
	case "esc":
		v.section = SectionOverview
		v.selected = 0
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(options)-1 {
			v.selected++
		}
	case "enter":
		key := "ocr.engine"
		if v.section == SectionNERProvider {
			key = "ner.provider"
		}
		value := options[v.selected]
		v.section = SectionOverview
		v.selected = 0
		return v, v.save(key, value)
	}
	return v, nil
}

func (v *View) enter(section Section) {
	v.section = section
	v.selected = 0
	v.notice = ""
	current := v.current()
	for i, opt := range v.options() {
		if opt == current {
			v.selected = i
		}
	}
}

// options lists the selectable values of the active section.
func (v *View) options() []string {
	var out []string
	switch v.section {
	case SectionOCREngine:
		for _, e := range domain.AllOCREngines() {
			out = append(out, e.String())
		}
	case SectionNERProvider:
		for _, p := range domain.AllNERProviders() {
			out = append(out, p.String())
		}
	case SectionOverview:
	}
	return out
}

func (v *View) current() string {
	if v.settings == nil {
		return ""
	}
	switch v.section {
	case SectionOCREngine:
		return v.settings.OCR.Engine.String()
	case SectionNERProvider:
		return v.settings.NER.Provider.String()
	case SectionOverview:
	}
	return ""
}

func description(section Section, value string) string {
	if section == SectionOCREngine {
		return domain.OCREngine(value).Description()
	}
	return domain.NERProvider(value).Description()
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	if v.section != SectionOverview {
		v.renderOptions(&b)
		return b.String()
	}

	s := v.settings
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", v.styles.Label.Render(label), value)
	}
	row("OCR engine", s.OCR.Engine.String())
	row("Languages", strings.Join(s.OCR.Languages, ", "))
	row("Vision key", maskKey(s.OCR.VisionAPIKey))
	row("PDF OCR", fmt.Sprintf("%t (below %d chars)", s.PDF.OCRFallback, s.PDF.MinTextLength))
	row("NER", s.NER.Provider.String())
	switch s.NER.Provider {
	case domain.NERProviderOllama:
		row("Model", s.NER.Model+" @ "+s.NER.BaseURL)
	case domain.NERProviderCommand:
		row("Command", strings.TrimSpace(s.NER.Command+" "+strings.Join(s.NER.Args, " ")))
	case domain.NERProviderRules, domain.NERProviderNone:
	}
	keywords := s.Keywords.File
	if keywords == "" {
		keywords = "(built-in)"
	}
	row("Keywords", keywords)
	row("Server", s.Server.Address)
	if v.path != "" {
		row("Config", v.path)
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[o] OCR engine  [n] NER provider  [Esc] Menu"))
	return b.String()
}

func (v *View) renderOptions(b *strings.Builder) {
	title := "OCR engine"
	if v.section == SectionNERProvider {
		title = "Entity recogniser"
	}
	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	current := v.current()
	for i, opt := range v.options() {
		cursor := "  "
		line := v.styles.Normal.Render(opt)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(opt)
		}
		marker := ""
		if opt == current {
			marker = v.styles.Success.Render(" (current)")
		}
		fmt.Fprintf(b, "%s%s%s  %s\n", cursor, line, marker,
			v.styles.Muted.Render(description(v.section, opt)))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Save  [Esc] Back"))
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Reset returns to the overview.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.notice = ""
}
