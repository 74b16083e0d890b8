// Package domain defines the core business entities for certcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque bytes of an uploaded certificate scan
//   - MatchResult: Reference terms found (or missing) in extracted text
//   - EntityBundle: Organisation and qualification mentions
//   - Score and Verdict: The heuristic outcome of one analysis
//   - AnalysisReport: Everything the presentation layer needs to render
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
