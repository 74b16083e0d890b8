package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyOCREngine         = "ocr.engine"
	keyOCRLanguages      = "ocr.languages"
	keyOCRVisionAPIKey   = "ocr.vision_api_key"
	keyPDFOCRFallback    = "pdf.ocr_fallback"
	keyPDFMinTextLength  = "pdf.min_text_length"
	keyNERProvider       = "ner.provider"
	keyNERModel          = "ner.model"
	keyNERBaseURL        = "ner.base_url"
	keyNERCommand        = "ner.command"
	keyNERArgs           = "ner.args"
	keyKeywordsFile      = "keywords.file"
	keyServerAddress     = "server.address"
	keyServerAllowOrigin = "server.allowed_origins"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Keys returns every settable key, sorted.
func Keys() []string {
	keys := []string{
		keyOCREngine, keyOCRLanguages, keyOCRVisionAPIKey,
		keyPDFOCRFallback, keyPDFMinTextLength,
		keyNERProvider, keyNERModel, keyNERBaseURL, keyNERCommand, keyNERArgs,
		keyKeywordsFile,
		keyServerAddress, keyServerAllowOrigin,
	}
	sort.Strings(keys)
	return keys
}

// Get retrieves current application settings.
// Unset or invalid values fall back to domain.DefaultSettings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		OCR: domain.OCRSettings{
			Engine:       s.getOCREngine(defaults.OCR.Engine),
			Languages:    s.getStringSlice(keyOCRLanguages, defaults.OCR.Languages),
			VisionAPIKey: s.configStore.GetString(keyOCRVisionAPIKey),
		},
		PDF: domain.PDFSettings{
			OCRFallback:   s.getBool(keyPDFOCRFallback, defaults.PDF.OCRFallback),
			MinTextLength: s.getInt(keyPDFMinTextLength, defaults.PDF.MinTextLength),
		},
		NER: domain.NERSettings{
			Provider: s.getNERProvider(defaults.NER.Provider),
			Model:    s.getString(keyNERModel, defaults.NER.Model),
			BaseURL:  s.getString(keyNERBaseURL, defaults.NER.BaseURL),
			Command:  s.configStore.GetString(keyNERCommand),
			Args:     s.configStore.GetStringSlice(keyNERArgs),
		},
		Keywords: domain.KeywordSettings{
			File: s.configStore.GetString(keyKeywordsFile),
		},
		Server: domain.ServerSettings{
			Address:        s.getString(keyServerAddress, defaults.Server.Address),
			AllowedOrigins: s.getStringSlice(keyServerAllowOrigin, defaults.Server.AllowedOrigins),
		},
	}

	return settings, nil
}

// Set validates a single value and persists it under key.
// List values are comma-separated.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case keyOCREngine:
		engine := domain.OCREngine(value)
		if !engine.IsValid() {
			return fmt.Errorf("%w: invalid OCR engine: %s", domain.ErrInvalidInput, value)
		}
		stored = engine.String()
	case keyNERProvider:
		provider := domain.NERProvider(value)
		if !provider.IsValid() {
			return fmt.Errorf("%w: invalid NER provider: %s", domain.ErrInvalidInput, value)
		}
		stored = provider.String()
	case keyPDFOCRFallback:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored = b
	case keyPDFMinTextLength:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case keyOCRLanguages, keyNERArgs, keyServerAllowOrigin:
		stored = splitList(value)
	case keyOCRVisionAPIKey, keyNERModel, keyNERBaseURL, keyNERCommand, keyKeywordsFile, keyServerAddress:
		stored = value
	default:
		return fmt.Errorf("%w: unknown setting: %s", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return val
}

func (s *SettingsService) getOCREngine(defaultVal domain.OCREngine) domain.OCREngine {
	engine := domain.OCREngine(s.configStore.GetString(keyOCREngine))
	if !engine.IsValid() {
		return defaultVal
	}
	return engine
}

func (s *SettingsService) getNERProvider(defaultVal domain.NERProvider) domain.NERProvider {
	provider := domain.NERProvider(s.configStore.GetString(keyNERProvider))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
