// Package command provides an entity recognizer backed by an external
// program. The program receives the certificate text on stdin and prints
// JSON on stdout, either a bare array of {"text","label"} spans or an
// envelope:
//
//	{"ok": true, "entities": [{"text": "MIT", "label": "ORG"}]}
//	{"ok": false, "error": "model not installed"}
//
// A spaCy script is the typical worker.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/execrunner"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure Recognizer implements the interface.
var _ driven.EntityRecognizer = (*Recognizer)(nil)

// DefaultTimeout bounds a single worker run.
const DefaultTimeout = 30 * time.Second

// ErrNotConfigured is returned when no command is set.
var ErrNotConfigured = errors.New("ner command not configured")

// Config holds configuration for the command recognizer.
type Config struct {
	// Command is the executable to run.
	Command string

	// Args are passed to Command.
	Args []string

	// Timeout bounds each run (default: 30s).
	Timeout time.Duration
}

// workerResponse is the envelope form of the worker's output.
type workerResponse struct {
	OK       *bool               `json:"ok"`
	Entities []domain.EntitySpan `json:"entities"`
	Error    string              `json:"error"`
}

// Recognizer runs an external NER worker per request.
type Recognizer struct {
	runner  driven.StdinCommandRunner
	command string
	args    []string
	timeout time.Duration
}

// New creates a command recognizer using os/exec.
func New(cfg Config) (*Recognizer, error) {
	return NewWithRunner(cfg, execrunner.New())
}

// NewWithRunner creates a command recognizer with a custom runner.
func NewWithRunner(cfg Config, runner driven.StdinCommandRunner) (*Recognizer, error) {
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Recognizer{
		runner:  runner,
		command: cfg.Command,
		args:    append([]string(nil), cfg.Args...),
		timeout: cfg.Timeout,
	}, nil
}

// Name returns "command:<executable base name>".
func (r *Recognizer) Name() string {
	return "command:" + filepath.Base(r.command)
}

// Recognize pipes text to the worker and decodes its spans.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.runner.RunWithInput(ctx, []byte(text), r.command, r.args...)
	if err != nil {
		return nil, fmt.Errorf("ner worker failed: %w", err)
	}
	return decode(out)
}

// Close releases resources.
func (r *Recognizer) Close() error {
	return nil
}

func decode(out []byte) ([]domain.EntitySpan, error) {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, errors.New("ner worker produced no output")
	}

	if strings.HasPrefix(trimmed, "[") {
		var spans []domain.EntitySpan
		if err := json.Unmarshal([]byte(trimmed), &spans); err != nil {
			return nil, fmt.Errorf("bad worker json: %w", err)
		}
		return spans, nil
	}

	var resp workerResponse
	if err := json.Unmarshal([]byte(trimmed), &resp); err != nil {
		return nil, fmt.Errorf("bad worker json: %w", err)
	}
	if resp.OK != nil && !*resp.OK {
		if resp.Error == "" {
			resp.Error = "unknown error"
		}
		return nil, fmt.Errorf("worker error: %s", resp.Error)
	}
	return resp.Entities, nil
}
