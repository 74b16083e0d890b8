package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available in this build.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates a media kind no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates OCR or PDF text extraction failed.
	// AnalyzeDocument downgrades this to an empty text plus a warning.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrRecognizerUnavailable indicates the entity recogniser could not be reached.
	// Entity extraction degrades to an empty bundle.
	ErrRecognizerUnavailable = errors.New("entity recognizer unavailable")

	// ErrToolNotFound indicates a required external executable is missing from PATH.
	ErrToolNotFound = errors.New("external tool not found")
)
