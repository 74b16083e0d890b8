// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// AnalysisRequested asks for the certificate at Path to be analysed.
type AnalysisRequested struct {
	Path string
}

// AnalysisCompleted carries a finished analysis back to the model.
type AnalysisCompleted struct {
	Analysis *domain.DocumentAnalysis
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAnalyze is the path input and report view.
	ViewAnalyze
	// ViewKeywords lists the active reference keyword lists.
	ViewKeywords
	// ViewSettings shows the current settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAnalyze:
		return "analyze"
	case ViewKeywords:
		return "keywords"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.Settings
	Path     string
	Err      error
}

// SettingsSaved is sent when a setting has been persisted.
type SettingsSaved struct {
	Err error
}
