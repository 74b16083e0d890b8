package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestEntityExtractor_NilRecognizer(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	bundle, err := extractor.Extract(context.Background(), "Stanford University")

	require.NoError(t, err)
	assert.False(t, extractor.Available())
	assert.True(t, bundle.Empty())
	assert.NotNil(t, bundle.Organizations)
}

func TestEntityExtractor_RoutesLabels(t *testing.T) {
	recognizer := &mockRecognizer{spans: []domain.EntitySpan{
		{Text: "Stanford University", Label: "ORG"},
		{Text: "John Smith", Label: "PERSON"},
		{Text: "Bachelor of Science", Label: "EDUCATION"},
		{Text: "Stanford University", Label: "org"},
		{Text: "Chartered Accountant", Label: "QUALIFICATION"},
		{Text: "  ", Label: "ORG"},
	}}
	extractor := NewEntityExtractor(recognizer)

	bundle, err := extractor.Extract(context.Background(), "Original Casing Text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Stanford University", "Stanford University"}, bundle.Organizations)
	assert.Equal(t, []string{"Bachelor of Science", "Chartered Accountant"}, bundle.Qualifications)
	assert.Equal(t, []string{"Original Casing Text"}, recognizer.texts)
}

func TestEntityExtractor_RecognizerError(t *testing.T) {
	recognizer := &mockRecognizer{err: errors.New("connection refused")}
	extractor := NewEntityExtractor(recognizer)

	bundle, err := extractor.Extract(context.Background(), "text")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecognizerUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, bundle.Empty())
}

func TestEntityExtractor_BlankTextSkipsRecognizer(t *testing.T) {
	recognizer := &mockRecognizer{}
	extractor := NewEntityExtractor(recognizer)

	_, err := extractor.Extract(context.Background(), " \n\t")

	require.NoError(t, err)
	assert.Zero(t, recognizer.calls)
}
