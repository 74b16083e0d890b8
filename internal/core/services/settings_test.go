package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.OCR.Engine, settings.OCR.Engine)
	assert.Equal(t, defaults.OCR.Languages, settings.OCR.Languages)
	assert.Equal(t, defaults.PDF, settings.PDF)
	assert.Equal(t, defaults.NER.Provider, settings.NER.Provider)
	assert.Equal(t, defaults.NER.BaseURL, settings.NER.BaseURL)
	assert.Equal(t, defaults.Server, settings.Server)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"ocr.engine":          "vision",
		"ocr.languages":       []any{"eng", "deu"},
		"pdf.ocr_fallback":    false,
		"pdf.min_text_length": int64(0),
		"ner.provider":        "command",
		"ner.command":         "ner-worker",
		"ner.args":            []string{"--json"},
		"keywords.file":       "/etc/certcheck/keywords.yaml",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.OCREngineVision, settings.OCR.Engine)
	assert.Equal(t, []string{"eng", "deu"}, settings.OCR.Languages)
	assert.False(t, settings.PDF.OCRFallback)
	assert.Equal(t, 0, settings.PDF.MinTextLength)
	assert.Equal(t, domain.NERProviderCommand, settings.NER.Provider)
	assert.Equal(t, "ner-worker", settings.NER.Command)
	assert.Equal(t, []string{"--json"}, settings.NER.Args)
	assert.Equal(t, "/etc/certcheck/keywords.yaml", settings.Keywords.File)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"ocr.engine":   "abbyy",
		"ner.provider": "spacy",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.OCREngineTesseract, settings.OCR.Engine)
	assert.Equal(t, domain.NERProviderRules, settings.NER.Provider)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected any
	}{
		{"ocr.engine", "vision", "vision"},
		{"ner.provider", "ollama", "ollama"},
		{"pdf.ocr_fallback", "false", false},
		{"pdf.min_text_length", "120", 120},
		{"ocr.languages", "eng, deu,,fra", []string{"eng", "deu", "fra"}},
		{"ner.model", "mistral", "mistral"},
		{"server.address", "127.0.0.1:9000", "127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.Set(tt.key, tt.value))

			val, ok := store.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ocr.engine", "abbyy"},
		{"ner.provider", "spacy"},
		{"pdf.ocr_fallback", "maybe"},
		{"pdf.min_text_length", "-1"},
		{"pdf.min_text_length", "many"},
		{"search.mode", "hybrid"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.Keys())
		})
	}
}

func TestSettingsService_SetThenGet(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.Set("ner.provider", "none"))
	require.NoError(t, service.Set("server.allowed_origins", "https://a.example,https://b.example"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.NERProviderNone, settings.NER.Provider)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, settings.Server.AllowedOrigins)
}

func TestKeys_Sorted(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 13)
	assert.IsIncreasing(t, keys)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}
