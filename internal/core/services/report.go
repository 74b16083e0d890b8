package services

import "github.com/custodia-labs/certcheck/internal/core/domain"

// AssembleReport aggregates the detector outputs into one report.
// It performs no computation; slices are copied so the report never
// aliases caller state.
func AssembleReport(
	suspicious, missing, degrees domain.MatchResult,
	entities domain.EntityBundle,
	score domain.Score,
	verdict domain.Verdict,
) domain.AnalysisReport {
	return domain.AnalysisReport{
		Suspicious: suspicious.Clone(),
		Missing:    missing.Clone(),
		Degrees:    degrees.Clone(),
		Entities:   entities.Clone(),
		Score:      score,
		Verdict:    verdict,
	}
}
