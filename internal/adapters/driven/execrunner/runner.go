// Package execrunner runs external programs for the extractor and
// recognizer adapters that shell out (pdftotext, pdftoppm, NER workers).
package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure Runner implements the interfaces.
var _ driven.StdinCommandRunner = Runner{}

// maxStderr bounds how much of a failing command's stderr ends up in errors.
const maxStderr = 512

// Runner executes commands with os/exec.
type Runner struct{}

// New returns a Runner.
func New() Runner {
	return Runner{}
}

// Run executes name with args and returns its standard output.
func (r Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return r.RunWithInput(ctx, nil, name, args...)
}

// RunWithInput executes name with args, feeding input on standard input.
// A missing executable is reported as domain.ErrToolNotFound.
func (Runner) RunWithInput(ctx context.Context, input []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", name, ctx.Err())
	}
	if errors.Is(err, exec.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, name)
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[:maxStderr] + "..."
		}
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, fmt.Errorf("%s: %w (stderr=%s)", name, err, msg)
	}
	return stdout.Bytes(), nil
}

// LookPath reports whether name is on PATH, as domain.ErrToolNotFound if not.
func LookPath(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrToolNotFound, name)
	}
	return nil
}
