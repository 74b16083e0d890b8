// Package rules provides an offline entity recognizer built from regular
// expressions tuned for certificate wording. It needs no model download and
// is the default recognizer.
package rules

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

// Ensure Recognizer implements the interface.
var _ driven.EntityRecognizer = (*Recognizer)(nil)

// word is one capitalised name token ("Stanford", "O'Neill", "A&M").
const word = `[A-Z][A-Za-z&'-]*`

type pattern struct {
	label string
	re    *regexp.Regexp
}

var patterns = []pattern{
	// "University of Oxford", "Institute of Technology and Science"
	{domain.LabelOrganization, regexp.MustCompile(
		`\b(?i:University|College|Institute|Academy|School|Faculty)\s+(?i:of)\s+` + word +
			`(?:\s+(?:(?i:of|and|for|the)|&|` + word + `))*`)},
	// "Stanford University", "Global Institute of Excellence"
	{domain.LabelOrganization, regexp.MustCompile(
		`\b(?:` + word + `\s+){1,4}(?i:University|College|Institute|Academy|Polytechnic|Conservatory)\b` +
			`(?:\s+(?i:of)\s+` + word + `(?:\s+` + word + `)*)?`)},
	// "Bachelor of Science in Computer Science", "Master's of Arts"
	{domain.LabelEducation, regexp.MustCompile(
		`\b(?i:Bachelor|Master|Doctor)(?:'s)?\s+(?i:of)\s+` + word + `(?:\s+(?:(?i:in|of|and)\s+)?` + word + `)*`)},
	// "Diploma in Nursing", "Certificate in Data Analysis"
	{domain.LabelEducation, regexp.MustCompile(
		`\b(?i:Diploma|Certificate|Degree)\s+(?i:in)\s+` + word + `(?:\s+` + word + `)*`)},
	// Abbreviated degrees.
	{domain.LabelEducation, regexp.MustCompile(
		`\b(?:B\.Sc|M\.Sc|BSc|MSc|B\.A|M\.A|MBA|Ph\.D|PhD|B\.Tech|M\.Tech|B\.Eng|M\.Eng|LLB|LLM)\b\.?`)},
	// Honours and classifications.
	{domain.LabelQualification, regexp.MustCompile(
		`(?i)\b(?:summa\s+|magna\s+)?cum\s+laude\b`)},
	{domain.LabelQualification, regexp.MustCompile(
		`\b(?i:First|Upper\s+Second|Lower\s+Second|Second|Third)[- ](?i:Class)(?:\s+(?i:Honours|Honors))?\b`)},
	{domain.LabelQualification, regexp.MustCompile(
		`\b(?i:with)\s+(?i:Honours|Honors|Distinction|Merit)\b`)},
	{domain.LabelQualification, regexp.MustCompile(
		`\b(?:Chartered|Certified|Registered)\s+` + word + `(?:\s+` + word + `)*`)},
}

// leadingNoise are capitalised words that often precede an institution name
// on a certificate ("This Certifies That Stanford University").
var leadingNoise = map[string]bool{
	"this": true, "that": true, "certifies": true, "certify": true, "hereby": true,
	"is": true, "to": true, "the": true, "by": true, "from": true, "at": true,
	"awarded": true, "conferred": true, "presented": true, "granted": true,
	"and": true, "in": true, "of": true, "has": true, "been": true,
}

// trailingNoise are connector words a greedy match can end on.
var trailingNoise = map[string]bool{
	"of": true, "and": true, "for": true, "the": true, "in": true, "&": true,
}

// Recognizer labels organisations, degrees and honours with regular expressions.
// It is stateless and safe for concurrent use.
type Recognizer struct{}

// New creates a rules recognizer.
func New() *Recognizer {
	return &Recognizer{}
}

// Name returns "rules".
func (r *Recognizer) Name() string {
	return "rules"
}

type candidate struct {
	start, end int
	label      string
}

// Recognize returns labelled spans in appearance order. Overlapping
// matches keep the one that starts first, then the longest.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var candidates []candidate
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := trim(text, loc[0], loc[1], p.label == domain.LabelOrganization)
			if end > start {
				candidates = append(candidates, candidate{start: start, end: end, label: p.label})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	spans := make([]domain.EntitySpan, 0, len(candidates))
	lastEnd := -1
	for _, c := range candidates {
		if c.start < lastEnd {
			continue
		}
		// OCR output often breaks a name across lines.
		spanText := strings.Join(strings.Fields(text[c.start:c.end]), " ")
		spans = append(spans, domain.EntitySpan{Text: spanText, Label: c.label})
		lastEnd = c.end
	}
	return spans, nil
}

// Close releases resources.
func (r *Recognizer) Close() error {
	return nil
}

// trim drops noise words from the ends of text[start:end] and returns the
// narrowed bounds. Leading noise is only dropped for organisations.
func trim(text string, start, end int, dropLeading bool) (int, int) {
	for {
		span := text[start:end]
		span = strings.TrimRight(span, " \t\n.,;:")
		end = start + len(span)

		idx := strings.LastIndexAny(span, " \t\n")
		if idx < 0 || !trailingNoise[strings.ToLower(span[idx+1:])] {
			break
		}
		end = start + idx
	}

	if dropLeading {
		for {
			span := text[start:end]
			idx := strings.IndexAny(span, " \t\n")
			if idx < 0 || !leadingNoise[strings.ToLower(span[:idx])] {
				break
			}
			start += idx
			for start < end && strings.ContainsRune(" \t\n", rune(text[start])) {
				start++
			}
		}
	}
	return start, end
}
