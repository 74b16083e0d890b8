package services

import "strings"

// NormalizeText returns the case-folded copy of text used for matching.
// The original text is kept by the caller for display and entity extraction.
func NormalizeText(text string) string {
	return strings.ToLower(text)
}
