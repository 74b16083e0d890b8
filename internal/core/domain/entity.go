package domain

import "strings"

// Entity labels the extractor routes into an EntityBundle.
const (
	// LabelOrganization marks organisation spans (universities, institutes).
	LabelOrganization = "ORG"

	// LabelEducation marks education spans.
	LabelEducation = "EDUCATION"

	// LabelQualification marks qualification spans.
	LabelQualification = "QUALIFICATION"
)

// EntitySpan is one (text span, label) pair reported by an entity recogniser.
type EntitySpan struct {
	// Text is the span as it appears in the source text.
	Text string `json:"text"`

	// Label is the recogniser's category for the span.
	Label string `json:"label"`
}

// IsOrganization returns true if the span is labelled as an organisation.
func (s EntitySpan) IsOrganization() bool {
	return normaliseLabel(s.Label) == LabelOrganization
}

// IsQualification returns true if the span is labelled as education or qualification.
func (s EntitySpan) IsQualification() bool {
	label := normaliseLabel(s.Label)
	return label == LabelEducation || label == LabelQualification
}

func normaliseLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// EntityBundle holds the entity mentions relayed from the recogniser.
// Order is appearance order; duplicates are kept.
type EntityBundle struct {
	// Organizations holds organisation mentions.
	Organizations []string `json:"organizations"`

	// Qualifications holds education/qualification mentions.
	Qualifications []string `json:"qualifications"`
}

// Empty returns true if no entity of either category was found.
func (b EntityBundle) Empty() bool {
	return len(b.Organizations) == 0 && len(b.Qualifications) == 0
}

// Clone returns a copy that does not share backing arrays.
func (b EntityBundle) Clone() EntityBundle {
	orgs := make([]string, len(b.Organizations))
	copy(orgs, b.Organizations)
	quals := make([]string, len(b.Qualifications))
	copy(quals, b.Qualifications)
	return EntityBundle{Organizations: orgs, Qualifications: quals}
}
