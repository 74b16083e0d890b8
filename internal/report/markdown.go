package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// Markdown renders an analysis as a Markdown document.
func Markdown(a *domain.DocumentAnalysis) string {
	var b strings.Builder
	r := a.Report

	title := "Certificate analysis"
	if a.URI != "" {
		title += ": " + escapeCell(a.URI)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Verdict:** %s  \n", r.Verdict.Label())
	fmt.Fprintf(&b, "**Score:** %d/100\n\n", r.Score)

	b.WriteString("## Findings\n\n")
	rows := [][]string{
		{"Check", "Result"},
		{"Suspicious keywords", joinOrNone(r.Suspicious.Terms)},
		{"Missing authentic terms", joinOrNone(r.Missing.Terms)},
		{"Degree keywords", joinOrNone(r.Degrees.Terms)},
		{"Organizations", joinOrNone(r.Entities.Organizations)},
		{"Qualifications", joinOrNone(r.Entities.Qualifications)},
	}
	for _, line := range table(rows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if a.HasWarnings() {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range a.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	if text := strings.TrimSpace(a.Text); text != "" {
		b.WriteString("\n## Extracted text\n\n```text\n")
		b.WriteString(strings.ReplaceAll(Preview(text), "```", "'''"))
		b.WriteString("\n```\n")
	}
	return b.String()
}

// table lays out rows as a Markdown table with columns padded to their
// display width. The first row is the header.
func table(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	widths := make([]int, cols)
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			row[i] = escapeCell(row[i])
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for idx, row := range rows {
		lines = append(lines, tableRow(row, widths))
		if idx == 0 {
			sep := make([]string, cols)
			for i := range sep {
				sep[i] = strings.Repeat("-", widths[i])
			}
			lines = append(lines, tableRow(sep, widths))
		}
	}
	return lines
}

func tableRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, w))
		sb.WriteString(" |")
	}
	return sb.String()
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// escapeCell keeps s on one table row.
func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}
