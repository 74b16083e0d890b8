// Package ocr reads text from scanned certificate images with Tesseract.
//
// Images are normalised to PNG first so JPEG, TIFF, BMP and WebP scans all
// reach the engine in one format. The Tesseract binding needs cgo; builds
// without cgo get an engine that reports domain.ErrNotImplemented.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// recognizeFunc runs OCR over a PNG image.
type recognizeFunc func(ctx context.Context, png []byte, languages []string) (string, error)

// Config holds OCR configuration.
type Config struct {
	// Languages are Tesseract language codes (default: eng).
	Languages []string
}

// Extractor handles image documents.
type Extractor struct {
	languages []string
	recognize recognizeFunc
}

// New creates a Tesseract-backed extractor.
func New(cfg Config) *Extractor {
	langs := cfg.Languages
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &Extractor{
		languages: append([]string(nil), langs...),
		recognize: tesseractRecognize,
	}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "tesseract"
}

// SupportedKinds returns the media kinds this extractor handles.
func (e *Extractor) SupportedKinds() []domain.MediaKind {
	return []domain.MediaKind{domain.MediaKindImage}
}

// Languages returns the configured OCR languages.
func (e *Extractor) Languages() []string {
	return append([]string(nil), e.languages...)
}

// Extract runs OCR over an image document.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	png, err := ToPNG(raw.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, raw.URI, err)
	}
	text, err := e.RecognizeImage(ctx, png)
	if err != nil {
		return "", err
	}
	logger.Debug("tesseract: %d bytes of text from %s", len(text), raw.URI)
	return text, nil
}

// RecognizeImage runs OCR over a PNG image.
// Used directly by the PDF extractor for rendered pages.
func (e *Extractor) RecognizeImage(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := e.recognize(ctx, png, e.languages)
	if err != nil {
		return "", fmt.Errorf("%w: tesseract: %w", domain.ErrExtractionFailed, err)
	}
	return strings.TrimSpace(text), nil
}
