package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

const allAuthentic = "This is to certify that the degree was awarded by the university with honors."

func TestScoreMatches(t *testing.T) {
	tests := []struct {
		name       string
		suspicious int
		missing    int
		expected   domain.Score
	}{
		{"no penalties", 0, 0, 100},
		{"one suspicious", 1, 0, 85},
		{"one missing", 0, 1, 90},
		{"two suspicious", 2, 0, 70},
		{"all missing", 0, 5, 50},
		{"three suspicious two missing", 3, 2, 35},
		{"floored at zero", 10, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.MatchResult{Kind: domain.MatchSuspicious, Terms: make([]string, tt.suspicious)}
			m := domain.MatchResult{Kind: domain.MatchMissing, Terms: make([]string, tt.missing)}
			assert.Equal(t, tt.expected, ScoreMatches(s, m))
		})
	}
}

func TestScoreText_Bounded(t *testing.T) {
	lists := domain.DefaultKeywordLists()
	inputs := []string{
		"",
		allAuthentic,
		strings.Join(lists.Suspicious, " "),
		strings.Join(lists.Suspicious, " ") + " " + allAuthentic,
		strings.Repeat("x", 10000),
	}

	for _, in := range inputs {
		score := ScoreText(lists, in)
		assert.GreaterOrEqual(t, score, domain.MinScore)
		assert.LessOrEqual(t, score, domain.MaxScore)
	}
}

func TestScoreText_AddingSuspiciousNeverIncreases(t *testing.T) {
	lists := domain.DefaultKeywordLists()
	text := allAuthentic
	previous := ScoreText(lists, text)

	for _, term := range lists.Suspicious {
		text += " " + term
		current := ScoreText(lists, text)
		assert.LessOrEqual(t, current, previous, "after adding %q", term)
		previous = current
	}
}

func TestScoreText_IgnoresDegrees(t *testing.T) {
	lists := domain.DefaultKeywordLists()
	assert.Equal(t, ScoreText(lists, allAuthentic), ScoreText(lists, allAuthentic+" PhD MBA Diploma"))
}
