package domain

// AnalysisReport aggregates every detector output for one text.
// It is built once by the report assembler and treated as immutable.
type AnalysisReport struct {
	// Suspicious holds suspicious keywords found.
	Suspicious MatchResult `json:"suspicious_keywords"`

	// Missing holds authentic terms not found.
	Missing MatchResult `json:"missing_terms"`

	// Degrees holds degree keywords found. Informational only.
	Degrees MatchResult `json:"degree_keywords"`

	// Entities holds organisation and qualification mentions. Informational only.
	Entities EntityBundle `json:"entities"`

	// Score is the heuristic score.
	Score Score `json:"score"`

	// Verdict is the classification of Score.
	Verdict Verdict `json:"verdict"`
}
