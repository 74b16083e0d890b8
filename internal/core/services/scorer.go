package services

import "github.com/custodia-labs/certcheck/internal/core/domain"

// ScoreMatches computes the heuristic score from the suspicious and missing
// match results: 100, minus 15 per suspicious term, minus 10 per missing
// term, floored at 0. Degree keywords and entities never influence it.
func ScoreMatches(suspicious, missing domain.MatchResult) domain.Score {
	score := domain.MaxScore
	score -= domain.Score(suspicious.Len() * domain.SuspiciousPenalty)
	score -= domain.Score(missing.Len() * domain.MissingPenalty)
	if score < domain.MinScore {
		return domain.MinScore
	}
	return score
}

// ScoreText runs the suspicious and missing matchers over text and scores them.
func ScoreText(lists domain.KeywordLists, text string) domain.Score {
	return ScoreMatches(MatchSuspicious(lists, text), MatchMissing(lists, text))
}
