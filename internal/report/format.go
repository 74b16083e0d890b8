package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// Format selects an output representation.
type Format string

const (
	// FormatText is a human-readable terminal report.
	FormatText Format = "text"

	// FormatJSON is the DocumentAnalysis encoded as indented JSON.
	FormatJSON Format = "json"

	// FormatMarkdown is a Markdown document.
	FormatMarkdown Format = "markdown"

	// FormatHTML is a standalone HTML page.
	FormatHTML Format = "html"
)

// PreviewLength is the number of runes kept by Preview.
const PreviewLength = 1000

// AllFormats returns every supported format.
func AllFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown, FormatHTML}
}

// ParseFormat converts a flag value into a Format.
// "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, s)
	}
}

// Render writes the analysis to w in the requested format.
func Render(w io.Writer, a *domain.DocumentAnalysis, f Format) error {
	if a == nil {
		return domain.ErrInvalidInput
	}
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(a))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(a))
		return err
	case FormatHTML:
		return HTML(w, a)
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, f)
	}
}

// Preview returns the first PreviewLength runes of text, followed by
// "..." when anything was cut.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:PreviewLength]) + "..."
}

// ScoreBar draws the score as a bar of width cells.
func ScoreBar(score domain.Score, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(score) * width / int(domain.MaxScore)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func joinOrNone(terms []string) string {
	if len(terms) == 0 {
		return "none"
	}
	return strings.Join(terms, ", ")
}
