package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestRecognizer_Name(t *testing.T) {
	r := New()
	assert.Equal(t, "rules", r.Name())
	assert.NoError(t, r.Close())
}

func TestRecognize_Certificate(t *testing.T) {
	text := "This is to certify that John Smith has been awarded the degree of " +
		"Bachelor of Science in Computer Science by Stanford University with Honours."

	spans, err := New().Recognize(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, []domain.EntitySpan{
		{Text: "Bachelor of Science in Computer Science", Label: domain.LabelEducation},
		{Text: "Stanford University", Label: domain.LabelOrganization},
		{Text: "with Honours", Label: domain.LabelQualification},
	}, spans)
}

func TestRecognize_Cases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []domain.EntitySpan
	}{
		{
			name:     "upper case institution",
			text:     "UNIVERSITY OF OXFORD",
			expected: []domain.EntitySpan{{Text: "UNIVERSITY OF OXFORD", Label: "ORG"}},
		},
		{
			name:     "leading title-case noise dropped",
			text:     "This Certifies That Stanford University",
			expected: []domain.EntitySpan{{Text: "Stanford University", Label: "ORG"}},
		},
		{
			name:     "trailing connector dropped",
			text:     "University of Oxford and the",
			expected: []domain.EntitySpan{{Text: "University of Oxford", Label: "ORG"}},
		},
		{
			name:     "name with of-clause kept whole",
			text:     "Global Institute of Excellence",
			expected: []domain.EntitySpan{{Text: "Global Institute of Excellence", Label: "ORG"}},
		},
		{
			name: "abbreviated degrees",
			text: "holder of a PhD and an MBA",
			expected: []domain.EntitySpan{
				{Text: "PhD", Label: "EDUCATION"},
				{Text: "MBA", Label: "EDUCATION"},
			},
		},
		{
			name:     "diploma",
			text:     "completed the Diploma in Nursing",
			expected: []domain.EntitySpan{{Text: "Diploma in Nursing", Label: "EDUCATION"}},
		},
		{
			name:     "latin honours",
			text:     "graduated magna cum laude",
			expected: []domain.EntitySpan{{Text: "magna cum laude", Label: "QUALIFICATION"}},
		},
		{
			name:     "class of degree",
			text:     "awarded First Class Honours",
			expected: []domain.EntitySpan{{Text: "First Class Honours", Label: "QUALIFICATION"}},
		},
		{
			name:     "professional title",
			text:     "is a Chartered Accountant",
			expected: []domain.EntitySpan{{Text: "Chartered Accountant", Label: "QUALIFICATION"}},
		},
		{
			name:     "nothing to find",
			text:     "lorem ipsum dolor sit amet",
			expected: []domain.EntitySpan{},
		},
		{
			name:     "empty",
			text:     "",
			expected: []domain.EntitySpan{},
		},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := r.Recognize(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spans)
		})
	}
}

func TestRecognize_LineBreaksCollapsed(t *testing.T) {
	spans, err := New().Recognize(context.Background(), "Awarded by Stanford\nUniversity with honors")

	require.NoError(t, err)
	assert.Equal(t, []domain.EntitySpan{
		{Text: "Stanford University", Label: domain.LabelOrganization},
		{Text: "with honors", Label: domain.LabelQualification},
	}, spans)
}

func TestRecognize_KeepsDuplicates(t *testing.T) {
	spans, err := New().Recognize(context.Background(), "Yale University, Yale University")

	require.NoError(t, err)
	assert.Len(t, spans, 2)
}

func TestRecognize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Recognize(ctx, "Stanford University")

	assert.ErrorIs(t, err, context.Canceled)
}
