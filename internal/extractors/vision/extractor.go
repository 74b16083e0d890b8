// Package vision reads certificate images with the Google Cloud Vision
// document text detection API.
//
// Credentials come from an API key when one is configured, otherwise from
// Google application default credentials.
package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// featureDocumentText selects dense-text OCR, suited to certificates.
const featureDocumentText = "DOCUMENT_TEXT_DETECTION"

var (
	// ErrNoCredentials indicates neither an API key nor default credentials are available.
	ErrNoCredentials = errors.New("vision: no API key or application default credentials")

	// ErrUnauthorized indicates the API rejected the credentials.
	ErrUnauthorized = errors.New("vision: unauthorised (invalid credentials)")

	// ErrQuotaExceeded indicates the API quota or rate limit was exceeded.
	ErrQuotaExceeded = errors.New("vision: quota exceeded")
)

// Config holds Vision API configuration.
type Config struct {
	// APIKey authenticates requests. Empty uses application default credentials.
	APIKey string

	// Endpoint overrides the API base URL.
	Endpoint string

	// HTTPClient replaces the authenticated client entirely.
	HTTPClient *http.Client
}

// Extractor handles image documents through Cloud Vision.
type Extractor struct {
	svc *vision.Service
}

// New creates a Vision extractor.
func New(ctx context.Context, cfg Config) (*Extractor, error) {
	var opts []option.ClientOption
	switch {
	case cfg.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	default:
		creds, err := google.FindDefaultCredentials(ctx, vision.CloudVisionScope)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
		}
		opts = append(opts, option.WithTokenSource(creds.TokenSource))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}
	return &Extractor{svc: svc}, nil
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "vision"
}

// SupportedKinds returns the media kinds this extractor handles.
func (e *Extractor) SupportedKinds() []domain.MediaKind {
	return []domain.MediaKind{domain.MediaKindImage}
}

// Extract runs document text detection over an image.
func (e *Extractor) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	text, err := e.RecognizeImage(ctx, raw.Content)
	if err != nil {
		return "", err
	}
	logger.Debug("vision: %d bytes of text from %s", len(text), raw.URI)
	return text, nil
}

// RecognizeImage runs document text detection over encoded image bytes.
func (e *Extractor) RecognizeImage(ctx context.Context, img []byte) (string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(img)},
			Features: []*vision.Feature{{Type: featureDocumentText}},
		}},
	}

	resp, err := e.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: vision: %w", domain.ErrExtractionFailed, wrapError(err))
	}
	if len(resp.Responses) == 0 {
		return "", nil
	}

	r := resp.Responses[0]
	if r.Error != nil && r.Error.Code != 0 {
		return "", fmt.Errorf("%w: vision: %s (code %d)", domain.ErrExtractionFailed, r.Error.Message, r.Error.Code)
	}
	if r.FullTextAnnotation != nil {
		return strings.TrimSpace(r.FullTextAnnotation.Text), nil
	}
	if len(r.TextAnnotations) > 0 {
		return strings.TrimSpace(r.TextAnnotations[0].Description), nil
	}
	return "", nil
}

// wrapError maps Google API status codes onto package errors.
func wrapError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, gerr.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, gerr.Message)
	default:
		return err
	}
}
