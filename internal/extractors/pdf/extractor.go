// Package pdf extracts certificate text from PDF files with poppler's
// pdftotext. Scanned PDFs whose text layer is too thin are rendered to
// images with pdftoppm and passed through OCR.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/execrunner"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// ErrPDFToolNotFound is returned when pdftotext is not installed.
var ErrPDFToolNotFound = fmt.Errorf("%w: pdftotext (install poppler)", domain.ErrToolNotFound)

// RenderDPI is the resolution pages are rendered at for OCR.
const RenderDPI = 150

// PageRecognizer reads text from a rendered page image (PNG).
type PageRecognizer interface {
	RecognizeImage(ctx context.Context, png []byte) (string, error)
}

// Config controls the OCR fallback.
type Config struct {
	// OCRFallback enables rendering and OCR when the text layer is thin.
	OCRFallback bool

	// MinTextLength is the rune count below which the fallback runs.
	MinTextLength int
}

// Extractor handles PDF documents.
type Extractor struct {
	runner driven.CommandRunner
	ocr    PageRecognizer
	cfg    Config
}

// New creates a PDF extractor using os/exec.
// ocr may be nil, which disables the fallback.
func New(ocr PageRecognizer, cfg Config) *Extractor {
	return NewWithRunner(execrunner.New(), ocr, cfg)
}

// NewWithRunner creates a PDF extractor with a custom command runner.
func NewWithRunner(runner driven.CommandRunner, ocr PageRecognizer, cfg Config) *Extractor {
	return &Extractor{runner: runner, ocr: ocr, cfg: cfg}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "pdftotext"
}

// SupportedKinds returns the media kinds this extractor handles.
func (e *Extractor) SupportedKinds() []domain.MediaKind {
	return []domain.MediaKind{domain.MediaKindPDF}
}

// Extract returns the text layer of the PDF, or OCR output for scanned
// pages when the fallback is enabled and the text layer is too short.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	dir, err := os.MkdirTemp("", "certcheck-pdf-*")
	if err != nil {
		return "", fmt.Errorf("%w: temp dir: %v", domain.ErrExtractionFailed, err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document.pdf")
	if err := os.WriteFile(path, raw.Content, 0600); err != nil {
		return "", fmt.Errorf("%w: write temp file: %v", domain.ErrExtractionFailed, err)
	}

	out, err := e.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", fmt.Errorf("%w: pdftotext failed: %v", domain.ErrExtractionFailed, err)
	}
	text := strings.TrimSpace(string(out))
	logger.Debug("pdftotext: %d runes from %s", utf8.RuneCountInString(text), raw.URI)

	if !e.needsOCR(text) {
		return text, nil
	}

	ocrText, err := e.ocrPages(ctx, dir, path)
	if err != nil {
		if text != "" {
			logger.Warn("PDF OCR fallback failed, using text layer: %v", err)
			return text, nil
		}
		return "", fmt.Errorf("%w: ocr fallback: %v", domain.ErrExtractionFailed, err)
	}
	if utf8.RuneCountInString(ocrText) > utf8.RuneCountInString(text) {
		return ocrText, nil
	}
	return text, nil
}

func (e *Extractor) needsOCR(text string) bool {
	if !e.cfg.OCRFallback || e.ocr == nil {
		return false
	}
	return utf8.RuneCountInString(text) < e.cfg.MinTextLength
}

// ocrPages renders every page to PNG and recognises them in order.
func (e *Extractor) ocrPages(ctx context.Context, dir, path string) (string, error) {
	prefix := filepath.Join(dir, "page")
	if _, err := e.runner.Run(ctx, "pdftoppm", "-r", strconv.Itoa(RenderDPI), "-png", path, prefix); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w", err)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("pdftoppm produced no pages")
	}
	sort.Strings(pages)

	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		img, err := os.ReadFile(page)
		if err != nil {
			return "", err
		}
		text, err := e.ocr.RecognizeImage(ctx, img)
		if err != nil {
			return "", fmt.Errorf("page %s: %w", filepath.Base(page), err)
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	logger.Debug("pdf OCR: %d pages", len(pages))
	return strings.Join(texts, "\n\n"), nil
}

// CheckAvailable verifies pdftotext and pdftoppm are installed.
func CheckAvailable() error {
	if err := execrunner.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return execrunner.LookPath("pdftoppm")
}

// InstallInstructions returns platform-specific installation instructions.
func InstallInstructions() string {
	return `PDF support requires pdftotext and pdftoppm from poppler.

Install with:
  macOS:   brew install poppler
  Ubuntu:  sudo apt install poppler-utils
  Fedora:  sudo dnf install poppler-utils
  Windows: choco install poppler`
}
