package domain

// MatchKind identifies which reference list produced a MatchResult.
type MatchKind string

// Available match kinds.
const (
	// MatchSuspicious lists suspicious terms present in the text.
	MatchSuspicious MatchKind = "suspicious"

	// MatchMissing lists authentic terms absent from the text.
	MatchMissing MatchKind = "missing"

	// MatchDegree lists degree tokens present in the text.
	MatchDegree MatchKind = "degree"
)

// String returns the string representation.
func (k MatchKind) String() string {
	return string(k)
}

// MatchResult is the ordered set of reference terms a matcher reported.
// Terms follow reference-list order, not occurrence order.
type MatchResult struct {
	// Kind is the matcher that produced this result.
	Kind MatchKind `json:"kind"`

	// Terms holds the reported reference terms. Never nil.
	Terms []string `json:"terms"`
}

// Len returns the number of reported terms.
func (m MatchResult) Len() int {
	return len(m.Terms)
}

// Empty returns true if nothing was reported.
func (m MatchResult) Empty() bool {
	return len(m.Terms) == 0
}

// Clone returns a copy that does not share the Terms backing array.
func (m MatchResult) Clone() MatchResult {
	terms := make([]string, len(m.Terms))
	copy(terms, m.Terms)
	return MatchResult{Kind: m.Kind, Terms: terms}
}
