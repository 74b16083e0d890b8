//go:build !cgo

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestTesseractWithoutCGO(t *testing.T) {
	assert.ErrorIs(t, Available(), domain.ErrNotImplemented)

	_, err := New(Config{}).RecognizeImage(context.Background(), []byte{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
