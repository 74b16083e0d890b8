package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// mockRunner is a test double for driven.StdinCommandRunner.
type mockRunner struct {
	output []byte
	err    error

	name  string
	args  []string
	input []byte
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return m.RunWithInput(ctx, nil, name, args...)
}

func (m *mockRunner) RunWithInput(_ context.Context, input []byte, name string, args ...string) ([]byte, error) {
	m.name, m.args, m.input = name, args, input
	return m.output, m.err
}

func TestNew_RequiresCommand(t *testing.T) {
	r, err := New(Config{Command: "  "})

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, r)
}

func TestRecognize_PipesTextAndArgs(t *testing.T) {
	runner := &mockRunner{output: []byte(`[{"text":"MIT","label":"ORG"}]`)}
	r, err := NewWithRunner(Config{Command: "/opt/ner/worker.py", Args: []string{"--model", "en_core_web_sm"}}, runner)
	require.NoError(t, err)

	spans, err := r.Recognize(context.Background(), "Massachusetts Institute of Technology (MIT)")

	require.NoError(t, err)
	assert.Equal(t, []domain.EntitySpan{{Text: "MIT", Label: "ORG"}}, spans)
	assert.Equal(t, "/opt/ner/worker.py", runner.name)
	assert.Equal(t, []string{"--model", "en_core_web_sm"}, runner.args)
	assert.Equal(t, "Massachusetts Institute of Technology (MIT)", string(runner.input))
	assert.Equal(t, "command:worker.py", r.Name())
	assert.NoError(t, r.Close())
}

func TestRecognize_Outputs(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []domain.EntitySpan
		errMsg   string
	}{
		{
			name:     "envelope ok",
			output:   `{"ok":true,"entities":[{"text":"BSc","label":"EDUCATION"}]}`,
			expected: []domain.EntitySpan{{Text: "BSc", Label: "EDUCATION"}},
		},
		{
			name:     "envelope without ok flag",
			output:   `{"entities":[]}`,
			expected: []domain.EntitySpan{},
		},
		{name: "envelope error", output: `{"ok":false,"error":"model missing"}`, errMsg: "worker error: model missing"},
		{name: "envelope error without message", output: `{"ok":false}`, errMsg: "unknown error"},
		{name: "empty output", output: "  \n", errMsg: "no output"},
		{name: "not json", output: "Traceback (most recent call last)", errMsg: "bad worker json"},
		{name: "broken array", output: "[{]", errMsg: "bad worker json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewWithRunner(Config{Command: "ner"}, &mockRunner{output: []byte(tt.output)})
			require.NoError(t, err)

			spans, err := r.Recognize(context.Background(), "text")

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spans)
		})
	}
}

func TestRecognize_RunnerError(t *testing.T) {
	r, err := NewWithRunner(Config{Command: "ner"}, &mockRunner{err: errors.New("exit status 1")})
	require.NoError(t, err)

	_, err = r.Recognize(context.Background(), "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ner worker failed")
}
