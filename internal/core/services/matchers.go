package services

import (
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// KeywordMatcher tests reference terms for case-insensitive substring
// presence in a text. Reported terms keep their reference-list casing
// and order.
type KeywordMatcher struct {
	kind  domain.MatchKind
	terms []string
	// folded holds the lower-cased terms, index-aligned with terms.
	folded []string
	// reportAbsent inverts the test: terms NOT found are reported.
	reportAbsent bool
}

// NewKeywordMatcher creates a matcher that reports terms found in the text.
func NewKeywordMatcher(kind domain.MatchKind, terms []string) *KeywordMatcher {
	return newKeywordMatcher(kind, terms, false)
}

// NewMissingTermMatcher creates a matcher that reports terms absent from the text.
func NewMissingTermMatcher(terms []string) *KeywordMatcher {
	return newKeywordMatcher(domain.MatchMissing, terms, true)
}

func newKeywordMatcher(kind domain.MatchKind, terms []string, reportAbsent bool) *KeywordMatcher {
	m := &KeywordMatcher{
		kind:         kind,
		terms:        append([]string(nil), terms...),
		folded:       make([]string, len(terms)),
		reportAbsent: reportAbsent,
	}
	for i, term := range terms {
		m.folded[i] = NormalizeText(term)
	}
	return m
}

// Kind returns the match kind this matcher produces.
func (m *KeywordMatcher) Kind() domain.MatchKind {
	return m.kind
}

// Match runs the matcher over text. Text may be in any casing.
func (m *KeywordMatcher) Match(text string) domain.MatchResult {
	return m.MatchNormalized(NormalizeText(text))
}

// MatchNormalized runs the matcher over text already passed through NormalizeText.
func (m *KeywordMatcher) MatchNormalized(normalized string) domain.MatchResult {
	result := domain.MatchResult{Kind: m.kind, Terms: []string{}}
	for i, term := range m.terms {
		found := strings.Contains(normalized, m.folded[i])
		if found != m.reportAbsent {
			result.Terms = append(result.Terms, term)
		}
	}
	return result
}

// MatchSuspicious returns the suspicious terms present in text.
func MatchSuspicious(lists domain.KeywordLists, text string) domain.MatchResult {
	return NewKeywordMatcher(domain.MatchSuspicious, lists.Suspicious).Match(text)
}

// MatchMissing returns the authentic terms absent from text.
func MatchMissing(lists domain.KeywordLists, text string) domain.MatchResult {
	return NewMissingTermMatcher(lists.Authentic).Match(text)
}

// MatchDegrees returns the degree tokens present in text.
func MatchDegrees(lists domain.KeywordLists, text string) domain.MatchResult {
	return NewKeywordMatcher(domain.MatchDegree, lists.Degrees).Match(text)
}
