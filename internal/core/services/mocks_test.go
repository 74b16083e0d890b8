package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// mockRecognizer is a test double for driven.EntityRecognizer.
type mockRecognizer struct {
	mu    sync.Mutex
	spans []domain.EntitySpan
	err   error
	calls int
	texts []string
}

func (m *mockRecognizer) Name() string { return "mock" }

func (m *mockRecognizer) Recognize(_ context.Context, text string) ([]domain.EntitySpan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.texts = append(m.texts, text)
	return m.spans, m.err
}

func (m *mockRecognizer) Close() error { return nil }

// mockExtractor is a test double for driven.TextExtractor.
type mockExtractor struct {
	name  string
	kinds []domain.MediaKind
	text  string
	err   error
	calls int
}

func (m *mockExtractor) Name() string                       { return m.name }
func (m *mockExtractor) SupportedKinds() []domain.MediaKind { return m.kinds }

func (m *mockExtractor) Extract(_ context.Context, _ *domain.RawDocument) (string, error) {
	m.calls++
	return m.text, m.err
}
