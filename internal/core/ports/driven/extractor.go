package driven

import (
	"context"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// TextExtractor reads plain text out of an uploaded document.
// Each extractor handles one or more media kinds (OCR for images,
// text-layer extraction for PDFs).
type TextExtractor interface {
	// Name identifies the extractor in reports and logs (e.g., "tesseract").
	Name() string

	// SupportedKinds returns the media kinds this extractor handles.
	SupportedKinds() []domain.MediaKind

	// Extract returns the document text in its original casing.
	// An empty string with a nil error means the document holds no text.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}

// ExtractorRegistry selects the extractor for a document's media kind.
type ExtractorRegistry interface {
	// Register adds an extractor. A later registration for the same
	// kind replaces the earlier one.
	Register(extractor TextExtractor)

	// Extract runs the extractor registered for raw.Kind and returns
	// its text along with the extractor's name.
	// Returns domain.ErrUnsupportedType when no extractor handles the kind.
	Extract(ctx context.Context, raw *domain.RawDocument) (text, extractor string, err error)

	// Supports returns true if an extractor is registered for kind.
	Supports(kind domain.MediaKind) bool

	// SupportedKinds returns all media kinds that can be extracted.
	SupportedKinds() []domain.MediaKind
}
