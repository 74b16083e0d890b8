// Package extractors provides implementations of the TextExtractor
// interface. Each extractor turns one media kind into plain text:
// OCR engines for scanned images and pdftotext for PDFs.
//
// Extractors are registered with the ExtractorRegistry at startup.
package extractors
