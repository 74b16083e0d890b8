package ocr

import (
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/core/ports/driven"
)

func newTestExtractor(text string, err error) (*Extractor, *[]string) {
	var gotLangs []string
	e := New(Config{Languages: []string{"eng", "fra"}})
	e.recognize = func(_ context.Context, _ []byte, languages []string) (string, error) {
		gotLangs = languages
		return text, err
	}
	return e, &gotLangs
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextExtractor = (*Extractor)(nil)
}

func TestNew(t *testing.T) {
	e := New(Config{})
	assert.Equal(t, "tesseract", e.Name())
	assert.Equal(t, []domain.MediaKind{domain.MediaKindImage}, e.SupportedKinds())
	assert.Equal(t, []string{"eng"}, e.Languages())
}

func TestExtract(t *testing.T) {
	t.Run("returns trimmed text", func(t *testing.T) {
		e, langs := newTestExtractor("  This is to certify\n", nil)
		raw := &domain.RawDocument{URI: "scan.png", Kind: domain.MediaKindImage, Content: encode(t, png.Encode)}

		text, err := e.Extract(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "This is to certify", text)
		assert.Equal(t, []string{"eng", "fra"}, *langs)
	})

	t.Run("nil document", func(t *testing.T) {
		e, _ := newTestExtractor("", nil)
		_, err := e.Extract(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("undecodable image", func(t *testing.T) {
		e, _ := newTestExtractor("", nil)
		raw := &domain.RawDocument{URI: "scan.jpg", Kind: domain.MediaKindImage, Content: []byte("garbage")}

		_, err := e.Extract(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	})

	t.Run("engine error", func(t *testing.T) {
		engineErr := errors.New("no traineddata")
		e, _ := newTestExtractor("", engineErr)
		raw := &domain.RawDocument{URI: "scan.png", Kind: domain.MediaKindImage, Content: encode(t, png.Encode)}

		_, err := e.Extract(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrExtractionFailed)
		assert.ErrorIs(t, err, engineErr)
	})
}

func TestRecognizeImage_CancelledContext(t *testing.T) {
	e, _ := newTestExtractor("text", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.RecognizeImage(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
