package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// Warning texts attached to a DocumentAnalysis when a collaborator degrades.
const (
	warnExtractionFailed = "text extraction failed"
	warnEmptyText        = "extracted text is empty; score reflects missing terms only"
	warnNoEntities       = "entity recognition unavailable"
)

// AnalysisService runs the certificate analysis pipeline.
// It holds only immutable configuration and is safe for concurrent use.
type AnalysisService struct {
	lists      domain.KeywordLists
	suspicious *KeywordMatcher
	missing    *KeywordMatcher
	degrees    *KeywordMatcher
	entities   *EntityExtractor
	extractors driven.ExtractorRegistry
	now        func() time.Time
}

// NewAnalysisService creates a new analysis service.
// entities and extractors may be nil: entity bundles are then empty and
// AnalyzeDocument rejects every media kind.
func NewAnalysisService(
	lists domain.KeywordLists,
	entities *EntityExtractor,
	extractors driven.ExtractorRegistry,
) *AnalysisService {
	lists = lists.Clone()
	if entities == nil {
		entities = NewEntityExtractor(nil)
	}
	return &AnalysisService{
		lists:      lists,
		suspicious: NewKeywordMatcher(domain.MatchSuspicious, lists.Suspicious),
		missing:    NewMissingTermMatcher(lists.Authentic),
		degrees:    NewKeywordMatcher(domain.MatchDegree, lists.Degrees),
		entities:   entities,
		extractors: extractors,
		now:        time.Now,
	}
}

// Keywords returns a copy of the active reference lists.
func (s *AnalysisService) Keywords() domain.KeywordLists {
	return s.lists.Clone()
}

// Analyze scores already-extracted text.
// Entity recogniser failures are dropped; AnalyzeText reports them.
func (s *AnalysisService) Analyze(ctx context.Context, text string) domain.AnalysisReport {
	report, _ := s.analyze(ctx, text)
	return report
}

// AnalyzeText analyses text supplied directly.
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) *domain.DocumentAnalysis {
	report, entityErr := s.analyze(ctx, text)

	var warnings []string
	if entityErr != nil {
		warnings = append(warnings, warning(warnNoEntities, entityErr, domain.ErrRecognizerUnavailable))
	}

	return &domain.DocumentAnalysis{
		ID:         uuid.New().String(),
		URI:        domain.TextURI,
		Text:       text,
		Report:     report,
		Warnings:   warnings,
		AnalysedAt: s.now(),
	}
}

func (s *AnalysisService) analyze(ctx context.Context, text string) (domain.AnalysisReport, error) {
	logger.Section("Certificate Analysis")
	logger.Debug("Text length: %d bytes", len(text))

	normalized := NormalizeText(text)

	suspicious := s.suspicious.MatchNormalized(normalized)
	missing := s.missing.MatchNormalized(normalized)
	degrees := s.degrees.MatchNormalized(normalized)
	logger.Debug("Suspicious: %v", suspicious.Terms)
	logger.Debug("Missing: %v", missing.Terms)
	logger.Debug("Degrees: %v", degrees.Terms)

	done := logger.Stage("Entity recognition")
	entities, entityErr := s.entities.Extract(ctx, text)
	done()

	score := ScoreMatches(suspicious, missing)
	verdict := domain.Classify(score)
	logger.Info("Score: %d/100 (%s)", score, verdict.Label())

	return AssembleReport(suspicious, missing, degrees, entities, score, verdict), entityErr
}

// AnalyzeDocument extracts text from raw and analyses it.
// Extraction and recogniser failures become warnings on the result.
func (s *AnalysisService) AnalyzeDocument(
	ctx context.Context,
	raw *domain.RawDocument,
) (*domain.DocumentAnalysis, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if !raw.Kind.IsValid() || s.extractors == nil || !s.extractors.Supports(raw.Kind) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, raw.Kind)
	}

	logger.Section("Document Extraction")
	logger.Debug("URI: %s, kind: %s, size: %d bytes", raw.URI, raw.Kind, len(raw.Content))

	var warnings []string
	done := logger.Stage("Text extraction")
	text, extractorName, err := s.extractors.Extract(ctx, raw)
	done()
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		return nil, err
	case err != nil:
		logger.Warn("Extraction failed: %v", err)
		text = ""
		warnings = append(warnings, warning(warnExtractionFailed, err, domain.ErrExtractionFailed))
	case strings.TrimSpace(text) == "":
		logger.Warn("Extracted text is empty")
		warnings = append(warnings, warnEmptyText)
	default:
		logger.Debug("Extractor %s produced %d bytes", extractorName, len(text))
	}

	report, entityErr := s.analyze(ctx, text)
	if entityErr != nil {
		warnings = append(warnings, warning(warnNoEntities, entityErr, domain.ErrRecognizerUnavailable))
	}

	return &domain.DocumentAnalysis{
		ID:         uuid.New().String(),
		URI:        raw.URI,
		Kind:       raw.Kind,
		Extractor:  extractorName,
		Text:       text,
		Report:     report,
		Warnings:   warnings,
		AnalysedAt: s.now(),
	}, nil
}

// warning formats err under prefix, dropping the sentinel's own text so it
// is not repeated.
func warning(prefix string, err, sentinel error) string {
	detail := err.Error()
	detail = strings.TrimPrefix(detail, sentinel.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return prefix
	}
	return prefix + ": " + detail
}
