package domain

// MediaKind is the declared kind of an uploaded document.
// File type strings are resolved into a MediaKind before the core runs.
type MediaKind string

const (
	// MediaKindImage is a raster scan (PNG, JPEG, TIFF, ...), read with OCR.
	MediaKindImage MediaKind = "image"

	// MediaKindPDF is a PDF document, read from its text layer.
	MediaKindPDF MediaKind = "pdf"
)

// IsValid returns true if the media kind is recognised.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindImage, MediaKindPDF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k MediaKind) String() string {
	return string(k)
}

// RawDocument represents the opaque bytes of one uploaded certificate.
// It is produced by the upload collaborator and consumed once by a
// text extractor. The core never mutates it.
type RawDocument struct {
	// URI is the original location (file path, upload name, etc).
	URI string

	// Kind is the resolved media kind.
	Kind MediaKind

	// MIMEType is the sniffed content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
