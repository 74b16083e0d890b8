package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long key",
			input:    "sk-1234567890abcdef",
			expected: "sk-1...cdef",
		},
		{
			name:     "Very long key",
			input:    "sk-proj-1234567890abcdefghijklmnop",
			expected: "sk-p...mnop",
		},
		{
			name:     "Empty key",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsShowCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[OCR]")
	assert.Contains(t, out, domain.OCREngineTesseract.Description())
	assert.Contains(t, out, "[NER]")
	assert.Contains(t, out, "(built-in lists)")
	assert.Contains(t, out, ":8080")
}

func TestSettingsShowCmd_MasksVisionKey(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, ts.settings.Set("ocr.engine", "vision"))
	require.NoError(t, ts.settings.Set("ocr.vision_api_key", "AIzaSyExampleKey1234"))

	out, err := execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "AIza...1234")
	assert.NotContains(t, out, "ExampleKey")
}

func TestSettingsSetCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "ner.provider", "ollama")
	require.NoError(t, err)
	assert.Contains(t, out, "Set ner.provider = ollama")

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.NERProviderOllama, settings.NER.Provider)
}

func TestSettingsSetCmd_MasksAPIKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "ocr.vision_api_key", "AIzaSyExampleKey1234")
	require.NoError(t, err)
	assert.Contains(t, out, "AIza...1234")
}

func TestSettingsSetCmd_InvalidValue(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "ocr.engine", "abbyy")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", "ocr.engine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsWizardCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	// tesseract, then ollama with a custom model and the default URL
	input := strings.Join([]string{"1", "3", "llama3.1", ""}, "\n") + "\n"
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs([]string{"settings", "wizard"})
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetIn(nil)

	require.NoError(t, rootCmd.Execute())

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OCREngineTesseract, settings.OCR.Engine)
	assert.Equal(t, domain.NERProviderOllama, settings.NER.Provider)
	assert.Equal(t, "llama3.1", settings.NER.Model)
	assert.Equal(t, "http://localhost:11434", settings.NER.BaseURL)
	assert.Contains(t, buf.String(), "Configuration saved to")
}

func TestSettingsWizardCmd_CommandRequiresExecutable(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("1\n4\n\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetIn(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command is required")
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	SetServices(&Services{Analysis: &mockAnalysisService{}})
	defer SetServices(nil)

	_, err := execute(t, "settings", "show")
	assert.ErrorIs(t, err, errNoSettings)
}
