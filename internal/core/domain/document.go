package domain

import "time"

// TextURI is the URI of an analysis of text supplied directly, with no
// document behind it.
const TextURI = "(text)"

// DocumentAnalysis is the result of analysing one uploaded document.
// It wraps the pure AnalysisReport with identity and extraction context,
// so the report itself stays identical for identical text.
type DocumentAnalysis struct {
	// ID is the unique identifier for this analysis run.
	ID string `json:"id"`

	// URI is the original location of the document.
	URI string `json:"uri"`

	// Kind is the media kind the document was read as.
	Kind MediaKind `json:"kind"`

	// Extractor is the name of the extractor that produced Text.
	Extractor string `json:"extractor"`

	// Text is the extracted text in its original casing.
	Text string `json:"text"`

	// Report is the analysis of Text.
	Report AnalysisReport `json:"report"`

	// Warnings holds non-fatal collaborator problems (failed extraction,
	// empty text, unavailable entity recogniser).
	Warnings []string `json:"warnings,omitempty"`

	// AnalysedAt is when the analysis completed.
	AnalysedAt time.Time `json:"analysed_at"`
}

// HasWarnings returns true if any collaborator degraded during the analysis.
func (d *DocumentAnalysis) HasWarnings() bool {
	return len(d.Warnings) > 0
}
