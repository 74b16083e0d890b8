package driven

import (
	"context"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// EntityRecognizer labels named entities in free text.
// This is an optional service - when nil, entity bundles are empty.
//
// Implementations may include:
//   - Built-in pattern rules (offline)
//   - Ollama (local models)
//   - An external command (e.g., a spaCy worker)
//
// Implementations are constructed once per process and must be safe
// for concurrent use.
type EntityRecognizer interface {
	// Name identifies the recogniser in logs.
	Name() string

	// Recognize returns labelled spans in appearance order.
	// Labels follow the ORG / EDUCATION / QUALIFICATION convention;
	// other labels are passed through and ignored by the core.
	Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error)

	// Close releases resources.
	Close() error
}
