package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure ExtractorRegistry implements the interface.
var _ driven.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry dispatches documents to the extractor registered
// for their media kind.
type ExtractorRegistry struct {
	mu         sync.RWMutex
	extractors map[domain.MediaKind]driven.TextExtractor
}

// NewExtractorRegistry creates an empty extractor registry.
func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: make(map[domain.MediaKind]driven.TextExtractor),
	}
}

// Register adds an extractor for each kind it supports.
// A later registration for the same kind replaces the earlier one.
func (r *ExtractorRegistry) Register(extractor driven.TextExtractor) {
	if extractor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range extractor.SupportedKinds() {
		r.extractors[kind] = extractor
	}
}

// Extract runs the extractor registered for raw.Kind.
func (r *ExtractorRegistry) Extract(ctx context.Context, raw *domain.RawDocument) (string, string, error) {
	if raw == nil {
		return "", "", domain.ErrInvalidInput
	}

	r.mu.RLock()
	extractor, ok := r.extractors[raw.Kind]
	r.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.Kind)
	}

	text, err := extractor.Extract(ctx, raw)
	return text, extractor.Name(), err
}

// Supports returns true if an extractor is registered for kind.
func (r *ExtractorRegistry) Supports(kind domain.MediaKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.extractors[kind]
	return ok
}

// SupportedKinds returns all media kinds with a registered extractor, sorted.
func (r *ExtractorRegistry) SupportedKinds() []domain.MediaKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]domain.MediaKind, 0, len(r.extractors))
	for kind := range r.extractors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
