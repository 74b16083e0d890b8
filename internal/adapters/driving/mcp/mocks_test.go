package mcp

import (
	"context"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	report   domain.AnalysisReport
	analysis *domain.DocumentAnalysis
	keywords domain.KeywordLists
	warnings []string
	err      error

	gotText string
	gotRaw  *domain.RawDocument
}

func (m *mockAnalysisService) Analyze(_ context.Context, text string) domain.AnalysisReport {
	m.gotText = text
	return m.report
}

func (m *mockAnalysisService) AnalyzeText(_ context.Context, text string) *domain.DocumentAnalysis {
	m.gotText = text
	return &domain.DocumentAnalysis{URI: domain.TextURI, Text: text, Report: m.report, Warnings: m.warnings}
}

func (m *mockAnalysisService) AnalyzeDocument(
	_ context.Context,
	raw *domain.RawDocument,
) (*domain.DocumentAnalysis, error) {
	m.gotRaw = raw
	return m.analysis, m.err
}

func (m *mockAnalysisService) Keywords() domain.KeywordLists {
	return m.keywords
}

func fakeReport() domain.AnalysisReport {
	return domain.AnalysisReport{
		Suspicious: domain.MatchResult{Kind: domain.MatchSuspicious, Terms: []string{"dummy", "sample"}},
		Missing:    domain.MatchResult{Kind: domain.MatchMissing, Terms: []string{}},
		Degrees:    domain.MatchResult{Kind: domain.MatchDegree, Terms: []string{"PhD"}},
		Entities: domain.EntityBundle{
			Organizations:  []string{"Harverd University"},
			Qualifications: []string{"Doctor of Philosophy"},
		},
		Score:   70,
		Verdict: domain.VerdictSuspicious,
	}
}
