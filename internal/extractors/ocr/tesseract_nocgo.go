//go:build !cgo

package ocr

import (
	"context"
	"fmt"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

var errNoCGO = fmt.Errorf("%w: tesseract requires a cgo build", domain.ErrNotImplemented)

func tesseractRecognize(context.Context, []byte, []string) (string, error) {
	return "", errNoCGO
}

// Available reports whether the Tesseract engine is usable.
func Available() error {
	return errNoCGO
}
