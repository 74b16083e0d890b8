package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/config/file"
	"github.com/custodia-labs/certcheck/internal/adapters/driven/ner"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/cli"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/services"
	"github.com/custodia-labs/certcheck/internal/extractors/ocr"
	"github.com/custodia-labs/certcheck/internal/extractors/pdf"
	"github.com/custodia-labs/certcheck/internal/extractors/vision"
	"github.com/custodia-labs/certcheck/internal/logger"
)

const (
	promptDirName   = "prompts"
	keywordFileName = "keywords.yaml"
)

// bootstrap wires the driven adapters into the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	ctx := context.Background()

	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	prompts, err := file.NewPromptStore(filepath.Join(configDir, promptDirName))
	if err != nil {
		return nil, fmt.Errorf("open prompts: %w", err)
	}

	keywords := file.NewKeywordStore(settings.Keywords.File)
	lists, err := keywords.Load()
	if err != nil {
		return nil, fmt.Errorf("load keywords: %w", err)
	}
	writer := keywords
	if settings.Keywords.File == "" {
		writer = file.NewKeywordStore(filepath.Join(configDir, keywordFileName))
	}

	recognizer := ner.Init(ctx, settings.NER, prompts)
	for _, w := range recognizer.Warnings {
		logger.Warn("%s", w)
	}

	registry := services.NewExtractorRegistry()
	registerExtractors(ctx, registry, settings)

	analysis := services.NewAnalysisService(
		lists,
		services.NewEntityExtractor(recognizer.Recognizer),
		registry,
	)

	return &cli.Services{
		Analysis: analysis,
		Settings: settingsService,
		Keywords: writer,
		Close:    recognizer.Close,
	}, nil
}

// registerExtractors adds the image OCR engine and the PDF extractor.
// Scanned PDFs are OCRed with the same engine as images.
func registerExtractors(ctx context.Context, registry *services.ExtractorRegistry, settings *domain.Settings) {
	var pages pdf.PageRecognizer

	if settings.OCR.Engine == domain.OCREngineVision {
		v, err := vision.New(ctx, vision.Config{APIKey: settings.OCR.VisionAPIKey})
		if err == nil {
			registry.Register(v)
			pages = v
		} else {
			logger.Warn("vision OCR unavailable (%v); using tesseract", err)
		}
	}

	if pages == nil {
		t := ocr.New(ocr.Config{Languages: settings.OCR.Languages})
		if err := ocr.Available(); err != nil {
			logger.Warn("tesseract unavailable: %v", err)
		}
		registry.Register(t)
		pages = t
	}

	if err := pdf.CheckAvailable(); err != nil {
		logger.Warn("%v; %s", err, pdf.InstallInstructions())
	}
	registry.Register(pdf.New(pages, pdf.Config{
		OCRFallback:   settings.PDF.OCRFallback,
		MinTextLength: settings.PDF.MinTextLength,
	}))
}
