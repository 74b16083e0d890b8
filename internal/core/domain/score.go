package domain

// Score is the heuristic authenticity score in [MinScore, MaxScore].
// Higher means more likely genuine.
type Score int

// Scoring constants.
const (
	// MaxScore is the starting score before penalties.
	MaxScore Score = 100

	// MinScore is the floor applied after penalties.
	MinScore Score = 0

	// SuspiciousPenalty is subtracted per suspicious keyword found.
	SuspiciousPenalty = 15

	// MissingPenalty is subtracted per authentic term missing.
	MissingPenalty = 10

	// GenuineThreshold is the lowest score classified as genuine.
	GenuineThreshold Score = 80

	// SuspiciousThreshold is the lowest score classified as suspicious.
	SuspiciousThreshold Score = 50
)

// Verdict returns the classification for the score.
func (s Score) Verdict() Verdict {
	return Classify(s)
}

// Verdict is the coarse three-level classification derived from a Score.
type Verdict string

// Available verdicts.
const (
	// VerdictGenuine means the certificate is likely genuine.
	VerdictGenuine Verdict = "genuine"

	// VerdictSuspicious means the certificate warrants a closer look.
	VerdictSuspicious Verdict = "suspicious"

	// VerdictFake means the certificate is likely fake.
	VerdictFake Verdict = "fake"
)

// Classify maps a score to a verdict. It is total over every int value.
func Classify(score Score) Verdict {
	switch {
	case score >= GenuineThreshold:
		return VerdictGenuine
	case score >= SuspiciousThreshold:
		return VerdictSuspicious
	default:
		return VerdictFake
	}
}

// String returns the string representation.
func (v Verdict) String() string {
	return string(v)
}

// Label returns the human-readable label shown next to the score.
func (v Verdict) Label() string {
	switch v {
	case VerdictGenuine:
		return "Likely Genuine"
	case VerdictSuspicious:
		return "Suspicious"
	case VerdictFake:
		return "Likely Fake"
	default:
		return unknownDescription
	}
}
