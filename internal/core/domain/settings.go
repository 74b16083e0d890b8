package domain

const unknownDescription = "Unknown"

// OCREngine identifies the OCR collaborator used for image documents.
type OCREngine string

// Available OCR engines.
const (
	// OCREngineTesseract runs Tesseract locally (requires a cgo build).
	OCREngineTesseract OCREngine = "tesseract"

	// OCREngineVision calls the Google Cloud Vision API.
	OCREngineVision OCREngine = "vision"
)

// IsValid returns true if the OCR engine is recognised.
func (e OCREngine) IsValid() bool {
	switch e {
	case OCREngineTesseract, OCREngineVision:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e OCREngine) String() string {
	return string(e)
}

// Description returns a human-readable description of the engine.
func (e OCREngine) Description() string {
	switch e {
	case OCREngineTesseract:
		return "Tesseract (local)"
	case OCREngineVision:
		return "Google Cloud Vision (cloud)"
	default:
		return unknownDescription
	}
}

// NERProvider identifies the named-entity recognition collaborator.
type NERProvider string

// Available NER providers.
const (
	// NERProviderNone disables entity recognition.
	NERProviderNone NERProvider = "none"

	// NERProviderRules uses the built-in pattern recogniser.
	NERProviderRules NERProvider = "rules"

	// NERProviderOllama asks a local Ollama model to label spans.
	NERProviderOllama NERProvider = "ollama"

	// NERProviderCommand runs an external command that speaks JSON.
	NERProviderCommand NERProvider = "command"
)

// IsValid returns true if the NER provider is recognised.
func (p NERProvider) IsValid() bool {
	switch p {
	case NERProviderNone, NERProviderRules, NERProviderOllama, NERProviderCommand:
		return true
	default:
		return false
	}
}

// IsLocal returns true if this provider runs without network access.
func (p NERProvider) IsLocal() bool {
	return p != NERProviderOllama
}

// String returns the string representation.
func (p NERProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p NERProvider) Description() string {
	switch p {
	case NERProviderNone:
		return "Disabled"
	case NERProviderRules:
		return "Built-in rules (offline)"
	case NERProviderOllama:
		return "Ollama (local LLM)"
	case NERProviderCommand:
		return "External command"
	default:
		return unknownDescription
	}
}

// OCRSettings holds OCR configuration.
type OCRSettings struct {
	// Engine is the OCR collaborator.
	Engine OCREngine

	// Languages are Tesseract language codes (e.g., "eng").
	Languages []string

	// VisionAPIKey is the Cloud Vision API key.
	// Empty means application default credentials.
	VisionAPIKey string
}

// PDFSettings holds PDF extraction configuration.
type PDFSettings struct {
	// OCRFallback renders pages and runs OCR when the text layer is too thin.
	OCRFallback bool

	// MinTextLength is the extracted length below which fallback triggers.
	MinTextLength int
}

// NERSettings holds entity recogniser configuration.
type NERSettings struct {
	// Provider is the recogniser implementation.
	Provider NERProvider

	// Model is the LLM model name (for Ollama).
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// Command is the executable (for the command provider).
	Command string

	// Args are passed to Command.
	Args []string
}

// IsConfigured returns true if the provider has what it needs to run.
func (n NERSettings) IsConfigured() bool {
	switch n.Provider {
	case NERProviderRules, NERProviderOllama:
		return true
	case NERProviderCommand:
		return n.Command != ""
	default:
		return false
	}
}

// KeywordSettings holds reference list configuration.
type KeywordSettings struct {
	// File is a YAML file overriding the built-in lists. Empty uses defaults.
	File string
}

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	// Address is the listen address.
	Address string

	// AllowedOrigins are the CORS origins.
	AllowedOrigins []string
}

// Settings holds all application settings.
type Settings struct {
	OCR      OCRSettings
	PDF      PDFSettings
	NER      NERSettings
	Keywords KeywordSettings
	Server   ServerSettings
}

// DefaultSettings returns settings with sensible defaults.
// Everything works offline out of the box except Vision OCR.
func DefaultSettings() Settings {
	return Settings{
		OCR: OCRSettings{
			Engine:    OCREngineTesseract,
			Languages: []string{"eng"},
		},
		PDF: PDFSettings{
			OCRFallback:   true,
			MinTextLength: 50,
		},
		NER: NERSettings{
			Provider: NERProviderRules,
			Model:    "llama3.2",
			BaseURL:  "http://localhost:11434",
		},
		Server: ServerSettings{
			Address:        ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// AllOCREngines returns all available OCR engines.
func AllOCREngines() []OCREngine {
	return []OCREngine{OCREngineTesseract, OCREngineVision}
}

// AllNERProviders returns all available NER providers.
func AllNERProviders() []NERProvider {
	return []NERProvider{
		NERProviderNone,
		NERProviderRules,
		NERProviderOllama,
		NERProviderCommand,
	}
}
