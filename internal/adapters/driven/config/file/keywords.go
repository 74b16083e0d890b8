package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure KeywordStore implements the interface.
var _ driven.KeywordSource = (*KeywordStore)(nil)

// ErrKeywordsExist is returned by WriteDefaults when the file is already present.
var ErrKeywordsExist = errors.New("keyword file already exists")

// KeywordStore loads reference keyword lists from a YAML file:
//
//	suspicious: [harverd, oxfurd]
//	authentic: [degree, awarded]
//	degrees: [Bachelor, PhD]
//
// A list omitted from the file keeps its built-in default; an explicit
// empty list disables it.
type KeywordStore struct {
	path string
}

// NewKeywordStore creates a keyword store reading path.
// An empty path always yields domain.DefaultKeywordLists.
func NewKeywordStore(path string) *KeywordStore {
	return &KeywordStore{path: path}
}

// Path returns the YAML file path, or "" when defaults are used.
func (s *KeywordStore) Path() string {
	return s.path
}

// Load reads and validates the keyword lists.
func (s *KeywordStore) Load() (domain.KeywordLists, error) {
	defaults := domain.DefaultKeywordLists()
	if s.path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.KeywordLists{}, fmt.Errorf("read keyword file: %w", err)
	}

	var lists domain.KeywordLists
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return domain.KeywordLists{}, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, s.path, err)
	}

	if lists.Suspicious == nil {
		lists.Suspicious = defaults.Suspicious
	}
	if lists.Authentic == nil {
		lists.Authentic = defaults.Authentic
	}
	if lists.Degrees == nil {
		lists.Degrees = defaults.Degrees
	}

	if err := lists.Validate(); err != nil {
		return domain.KeywordLists{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return lists, nil
}

// WriteDefaults writes the built-in lists to the store's path so they can
// be edited. It refuses to overwrite an existing file.
func (s *KeywordStore) WriteDefaults() error {
	if s.path == "" {
		return fmt.Errorf("%w: no keyword file configured", domain.ErrInvalidInput)
	}
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w: %s", ErrKeywordsExist, s.path)
	}

	data, err := yaml.Marshal(domain.DefaultKeywordLists())
	if err != nil {
		return fmt.Errorf("encode keyword lists: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create keyword directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}
