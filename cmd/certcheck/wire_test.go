package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/services"
)

func TestBootstrap_Defaults(t *testing.T) {
	dir := t.TempDir()

	s, err := bootstrap(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, domain.DefaultKeywordLists(), s.Analysis.Keywords())
	assert.Equal(t, filepath.Join(dir, keywordFileName), s.Keywords.Path())
	assert.Equal(t, filepath.Join(dir, "config.toml"), s.Settings.Path())
	assert.DirExists(t, filepath.Join(dir, promptDirName))

	report := s.Analysis.Analyze(context.Background(), "")
	assert.Equal(t, domain.Score(50), report.Score)
}

func TestBootstrap_KeywordFile(t *testing.T) {
	dir := t.TempDir()
	lists := filepath.Join(dir, "lists.yaml")
	require.NoError(t, os.WriteFile(lists, []byte("suspicious: [forged]\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[keywords]\nfile = \""+filepath.ToSlash(lists)+"\"\n"), 0o600))

	s, err := bootstrap(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, []string{"forged"}, s.Analysis.Keywords().Suspicious)
	assert.Equal(t, lists, s.Keywords.Path())
}

func TestBootstrap_InvalidKeywordFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[keywords]\nfile = \"/nonexistent/lists.yaml\"\n"), 0o600))

	_, err := bootstrap(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load keywords")
}

func TestRegisterExtractors(t *testing.T) {
	settings := domain.DefaultSettings()
	registry := services.NewExtractorRegistry()

	registerExtractors(context.Background(), registry, &settings)

	assert.True(t, registry.Supports(domain.MediaKindImage))
	assert.True(t, registry.Supports(domain.MediaKindPDF))
}

func TestRegisterExtractors_VisionWithKey(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.OCR.Engine = domain.OCREngineVision
	settings.OCR.VisionAPIKey = "test-key"
	registry := services.NewExtractorRegistry()

	registerExtractors(context.Background(), registry, &settings)

	assert.True(t, registry.Supports(domain.MediaKindImage))
	assert.True(t, registry.Supports(domain.MediaKindPDF))
}
