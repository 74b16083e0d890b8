package domain

import (
	"fmt"
	"strings"
)

// KeywordLists holds the reference lists the keyword matchers compare against.
// Lists are configuration data: they can be replaced without touching matcher logic.
type KeywordLists struct {
	// Suspicious holds terms that indicate a forged or placeholder certificate.
	Suspicious []string `yaml:"suspicious" json:"suspicious"`

	// Authentic holds terms a genuine certificate is expected to contain.
	Authentic []string `yaml:"authentic" json:"authentic"`

	// Degrees holds degree-type tokens, reported but never scored.
	Degrees []string `yaml:"degrees" json:"degrees"`
}

// DefaultKeywordLists returns the built-in reference lists.
func DefaultKeywordLists() KeywordLists {
	return KeywordLists{
		Suspicious: []string{
			"harverd",
			"oxfurd",
			"unversity",
			"prestigous",
			"global institute of excellence",
			"cambrige",
			"certificate of magic",
			"univercity",
			"dummy",
			"sample",
		},
		Authentic: []string{
			"degree",
			"awarded",
			"certify",
			"university",
			"honors",
		},
		Degrees: []string{
			"Bachelor",
			"Master",
			"PhD",
			"B.Sc",
			"M.Sc",
			"MBA",
			"B.Tech",
			"M.Tech",
			"Doctorate",
			"Diploma",
		},
	}
}

// Validate checks that no list holds blank terms or case-insensitive duplicates.
// A valid list guarantees that match results never repeat a term.
func (k KeywordLists) Validate() error {
	lists := []struct {
		name  string
		terms []string
	}{
		{"suspicious", k.Suspicious},
		{"authentic", k.Authentic},
		{"degrees", k.Degrees},
	}

	for _, l := range lists {
		seen := make(map[string]struct{}, len(l.terms))
		for _, term := range l.terms {
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("%w: %s list contains a blank term", ErrInvalidInput, l.name)
			}
			key := strings.ToLower(term)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: %s list contains %q twice", ErrInvalidInput, l.name, term)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}

// Clone returns a deep copy of the lists.
func (k KeywordLists) Clone() KeywordLists {
	return KeywordLists{
		Suspicious: append([]string(nil), k.Suspicious...),
		Authentic:  append([]string(nil), k.Authentic...),
		Degrees:    append([]string(nil), k.Degrees...),
	}
}
