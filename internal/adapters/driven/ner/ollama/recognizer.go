// Package ollama provides an entity recognizer that prompts a local Ollama model.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure Recognizer implements the interfaces.
var (
	_ driven.EntityRecognizer = (*Recognizer)(nil)
	_ driven.PromptStoreAware = (*Recognizer)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 60 * time.Second

	// maxTextRunes bounds the text sent to the model.
	maxTextRunes = 8000
)

// Config holds configuration for the Ollama recognizer.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// RateLimit bounds request throughput (default: DefaultRateLimit).
	RateLimit RateLimitConfig
}

// Recognizer labels entities by prompting an Ollama model for JSON spans.
type Recognizer struct {
	client      *http.Client
	baseURL     string
	model       string
	limiter     *RateLimiter
	promptStore driven.PromptStore
}

// generateRequest is the Ollama /api/generate request format.
type generateRequest struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Format  string   `json:"format,omitempty"`
	Options *options `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the Ollama /api/generate response format.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// New creates a new Ollama entity recognizer.
func New(cfg Config) *Recognizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Recognizer{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		limiter: NewRateLimiter(cfg.RateLimit),
	}
}

// Name returns "ollama:<model>".
func (r *Recognizer) Name() string {
	return "ollama:" + r.model
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (r *Recognizer) SetPromptStore(store driven.PromptStore) {
	r.promptStore = store
}

// defaultPrompt is the fallback prompt when no PromptStore is configured.
const defaultPrompt = `Label named entities in this certificate text.
Return ONLY a JSON array of {"text": "...", "label": "..."} objects.
Labels: ORG for institutions, EDUCATION for degrees, QUALIFICATION for titles and honours.

Text:
%s

JSON:`

// Recognize asks the model to label spans in text.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	if runes := []rune(text); len(runes) > maxTextRunes {
		text = string(runes[:maxTextRunes])
	}

	prompt := fmt.Sprintf(r.loadPrompt(), text)
	raw, err := r.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	spans, err := ParseSpans(raw)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	return spans, nil
}

func (r *Recognizer) generate(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	jsonBody, err := json.Marshal(generateRequest{
		Model:   r.model,
		Prompt:  prompt,
		Stream:  false,
		Format:  "json",
		Options: &options{Temperature: 0},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
		r.limiter.Backoff(retryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return genResp.Response, nil
}

func (r *Recognizer) loadPrompt() string {
	if r.promptStore == nil {
		return defaultPrompt
	}
	prompt, err := r.promptStore.Load(driven.PromptEntityExtraction)
	if err != nil {
		return defaultPrompt
	}
	return prompt
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
func (r *Recognizer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: API returned status %d", resp.StatusCode)
	}
	return nil
}

// Close releases resources.
func (r *Recognizer) Close() error {
	r.client.CloseIdleConnections()
	return nil
}

// errNoJSON is returned when a model response holds no JSON value at all.
var errNoJSON = errors.New("response holds no JSON spans")

// ParseSpans decodes a model response into spans. It accepts a bare array,
// an object wrapping the array under "entities", a single span object, or
// an array embedded in surrounding prose. Any other JSON object means no spans.
func ParseSpans(raw string) ([]domain.EntitySpan, error) {
	data := []byte(strings.TrimSpace(raw))

	var spans []domain.EntitySpan
	if err := json.Unmarshal(data, &spans); err == nil {
		return spans, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		if entities, ok := obj["entities"]; ok {
			if err := json.Unmarshal(entities, &spans); err != nil {
				return nil, fmt.Errorf("decode spans: %w", err)
			}
			return spans, nil
		}
		var one domain.EntitySpan
		if err := json.Unmarshal(data, &one); err == nil && one.Text != "" {
			return []domain.EntitySpan{one}, nil
		}
		return []domain.EntitySpan{}, nil
	}

	start, end := bytes.IndexByte(data, '['), bytes.LastIndexByte(data, ']')
	if start < 0 || end <= start {
		return nil, errNoJSON
	}
	if err := json.Unmarshal(data[start:end+1], &spans); err != nil {
		return nil, fmt.Errorf("decode spans: %w", err)
	}
	return spans, nil
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
