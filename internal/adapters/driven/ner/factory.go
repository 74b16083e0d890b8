package ner

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/ner/command"
	"github.com/custodia-labs/certcheck/internal/adapters/driven/ner/ollama"
	"github.com/custodia-labs/certcheck/internal/adapters/driven/ner/rules"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// pingTimeout is the maximum time to wait for recogniser connectivity validation.
const pingTimeout = 5 * time.Second

// pinger is implemented by recognisers that can check connectivity up front.
type pinger interface {
	Ping(ctx context.Context) error
}

// InitResult contains the result of recogniser initialisation.
type InitResult struct {
	Recognizer driven.EntityRecognizer // Nil when recognition is disabled.
	Warnings   []string                // Non-fatal issues that caused fallback.
	FellBack   bool                    // True if fell back to the rules recogniser.
}

// Close releases the recogniser.
func (r *InitResult) Close() {
	if r.Recognizer != nil {
		r.Recognizer.Close()
	}
}

// Create builds the recogniser named by settings without validating it.
// It returns nil for NERProviderNone.
func Create(settings domain.NERSettings, prompts driven.PromptStore) (driven.EntityRecognizer, error) {
	switch settings.Provider {
	case domain.NERProviderNone:
		return nil, nil
	case domain.NERProviderRules, "":
		return rules.New(), nil
	case domain.NERProviderOllama:
		r := ollama.New(ollama.Config{BaseURL: settings.BaseURL, Model: settings.Model})
		if prompts != nil {
			r.SetPromptStore(prompts)
		}
		return r, nil
	case domain.NERProviderCommand:
		return command.New(command.Config{Command: settings.Command, Args: settings.Args})
	default:
		return nil, fmt.Errorf("%w: unknown NER provider: %s", domain.ErrInvalidInput, settings.Provider)
	}
}

// Init builds and validates the configured recogniser. A recogniser that
// cannot be created or reached is replaced by the rules recogniser and
// the reason is reported in Warnings.
func Init(ctx context.Context, settings domain.NERSettings, prompts driven.PromptStore) *InitResult {
	result := &InitResult{}

	recognizer, err := Create(settings, prompts)
	if err == nil && recognizer != nil {
		if p, ok := recognizer.(pinger); ok {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err = p.Ping(pingCtx)
			cancel()
			if err != nil {
				recognizer.Close()
				err = fmt.Errorf("%w: %w", domain.ErrRecognizerUnavailable, err)
			}
		}
	}

	if err != nil {
		logger.Warn("NER provider %s unavailable: %v", settings.Provider, err)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s recognizer unavailable (%v); using built-in rules", settings.Provider, err))
		result.FellBack = true
		recognizer = rules.New()
	}

	if recognizer != nil {
		logger.Debug("NER recognizer: %s", recognizer.Name())
	}
	result.Recognizer = recognizer
	return result
}
