package tui

import (
	"context"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

type mockAnalysisService struct {
	analysis *domain.DocumentAnalysis
	err      error
}

func (m *mockAnalysisService) Analyze(_ context.Context, _ string) domain.AnalysisReport {
	return domain.AnalysisReport{}
}

func (m *mockAnalysisService) AnalyzeText(_ context.Context, text string) *domain.DocumentAnalysis {
	return &domain.DocumentAnalysis{URI: domain.TextURI, Text: text}
}

func (m *mockAnalysisService) AnalyzeDocument(
	_ context.Context,
	_ *domain.RawDocument,
) (*domain.DocumentAnalysis, error) {
	return m.analysis, m.err
}

func (m *mockAnalysisService) Keywords() domain.KeywordLists {
	return domain.DefaultKeywordLists()
}

type mockSettingsService struct{}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	s := domain.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Path() string { return "/tmp/config.toml" }

func (m *mockSettingsService) GetDefaults() domain.Settings { return domain.DefaultSettings() }
