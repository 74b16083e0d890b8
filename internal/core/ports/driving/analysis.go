package driving

import (
	"context"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// AnalysisService runs the certificate analysis pipeline.
type AnalysisService interface {
	// Analyze scores already-extracted text. It is total: every string,
	// including the empty one, yields a report. Identical text always
	// yields an identical report.
	Analyze(ctx context.Context, text string) domain.AnalysisReport

	// AnalyzeText analyses text supplied directly. The result carries
	// TextURI and any recogniser failure as a warning.
	AnalyzeText(ctx context.Context, text string) *domain.DocumentAnalysis

	// AnalyzeDocument extracts text from raw and analyses it.
	// Collaborator failures become warnings on the result; only a nil
	// document or an unsupported media kind return an error.
	AnalyzeDocument(ctx context.Context, raw *domain.RawDocument) (*domain.DocumentAnalysis, error)

	// Keywords returns a copy of the active reference lists.
	Keywords() domain.KeywordLists
}
