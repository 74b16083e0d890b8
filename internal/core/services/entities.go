package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// EntityExtractor routes recogniser spans into an EntityBundle.
// The recogniser is injected once at construction and may be nil.
type EntityExtractor struct {
	recognizer driven.EntityRecognizer
}

// NewEntityExtractor creates an entity extractor.
// A nil recognizer yields empty bundles.
func NewEntityExtractor(recognizer driven.EntityRecognizer) *EntityExtractor {
	return &EntityExtractor{recognizer: recognizer}
}

// Available returns true if a recogniser is configured.
func (e *EntityExtractor) Available() bool {
	return e.recognizer != nil
}

// Extract runs the recogniser over text in its original casing.
// The bundle is always usable: on failure it is empty and the returned
// error wraps domain.ErrRecognizerUnavailable for the caller to report
// as a warning.
func (e *EntityExtractor) Extract(ctx context.Context, text string) (domain.EntityBundle, error) {
	bundle := domain.EntityBundle{
		Organizations:  []string{},
		Qualifications: []string{},
	}
	if e.recognizer == nil || strings.TrimSpace(text) == "" {
		return bundle, nil
	}

	spans, err := e.recognizer.Recognize(ctx, text)
	if err != nil {
		logger.Warn("Entity recognizer %s failed: %v", e.recognizer.Name(), err)
		return bundle, fmt.Errorf("%w: %s: %w", domain.ErrRecognizerUnavailable, e.recognizer.Name(), err)
	}

	for _, span := range spans {
		if strings.TrimSpace(span.Text) == "" {
			continue
		}
		switch {
		case span.IsOrganization():
			bundle.Organizations = append(bundle.Organizations, span.Text)
		case span.IsQualification():
			bundle.Qualifications = append(bundle.Qualifications, span.Text)
		}
	}
	logger.Debug("Entities: %d organizations, %d qualifications",
		len(bundle.Organizations), len(bundle.Qualifications))

	return bundle, nil
}
