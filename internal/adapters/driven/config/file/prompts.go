package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads NER prompts from user-editable files on disk.
// Prompts live in <config dir>/prompts with fallback to embedded defaults.
//
// Files are only created on the first Load, never in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// They are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptEntityExtraction: `You label named entities in text read from an academic certificate.
Return ONLY a JSON array. Each element is an object {"text": "...", "label": "..."}.
Use the label ORG for universities, colleges, institutes and other organisations.
Use the label EDUCATION for degrees, diplomas and fields of study.
Use the label QUALIFICATION for professional titles and honours.
Copy each span exactly as it appears, in the order it appears. Do not invent spans.
Return [] if there are none.

Text:
%s

JSON:`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to <DefaultDir>/prompts.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		promptDir = filepath.Join(dir, "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// A user file that lost its %s placeholder is ignored in favour of the
// embedded default, since the certificate text would never reach the model.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)

	defaultPrompt, known := defaultPrompts[name]
	if s.initErr != nil {
		if known {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	switch {
	case err != nil && known:
		prompt = defaultPrompt
	case err != nil:
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	case known && !strings.Contains(prompt, "%s"):
		logger.Warn("Prompt %q has no %%s placeholder, using built-in default", name)
		prompt = defaultPrompt
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory, default files and README.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+".txt"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	content := `# certcheck prompts

Prompts used when ner.provider is set to "ollama".

## Files

- ` + "`entity_extraction.txt`" + ` - Asks the model to label organisations and qualifications

## Customisation

Edit the file to tune entity recognition. The model must still answer with a
JSON array of {"text", "label"} objects using the labels ORG, EDUCATION and
QUALIFICATION; any other label is ignored.

Keep the ` + "`%s`" + ` placeholder: it is replaced with the certificate text.
A prompt without it is ignored and the built-in default is used.
`
	return os.WriteFile(path, []byte(content), 0600)
}
