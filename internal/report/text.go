package report

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

const barWidth = 20

// Text renders the terminal form of an analysis.
func Text(a *domain.DocumentAnalysis) string {
	var b strings.Builder
	r := a.Report

	if a.URI != "" {
		fmt.Fprintf(&b, "Certificate: %s\n", a.URI)
	}
	if a.Extractor != "" {
		fmt.Fprintf(&b, "Extractor:   %s\n", a.Extractor)
	}
	fmt.Fprintf(&b, "Score:       %3d/100 [%s]\n", r.Score, ScoreBar(r.Score, barWidth))
	fmt.Fprintf(&b, "Verdict:     %s\n", r.Verdict.Label())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Suspicious keywords:     %s\n", joinOrNone(r.Suspicious.Terms))
	fmt.Fprintf(&b, "Missing authentic terms: %s\n", joinOrNone(r.Missing.Terms))
	fmt.Fprintf(&b, "Degree keywords:         %s\n", joinOrNone(r.Degrees.Terms))
	fmt.Fprintf(&b, "Organizations:           %s\n", joinOrNone(r.Entities.Organizations))
	fmt.Fprintf(&b, "Qualifications:          %s\n", joinOrNone(r.Entities.Qualifications))

	if a.HasWarnings() {
		b.WriteString("\nWarnings:\n")
		for _, w := range a.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	if text := strings.TrimSpace(a.Text); text != "" {
		b.WriteString("\nExtracted text:\n")
		b.WriteString(Preview(text))
		b.WriteString("\n")
	}
	return b.String()
}
