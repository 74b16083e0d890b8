package filesource

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// MaxFileSize is the largest certificate file that will be loaded (32 MiB).
const MaxFileSize = 32 << 20

// sniffLen is the number of bytes http.DetectContentType considers.
const sniffLen = 512

// extensionTypes maps supported file extensions to their MIME types.
var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".pdf":  "application/pdf",
}

// Load reads the file at path and classifies it.
// Accepts bare paths and file:// URIs.
func Load(path string) (*domain.RawDocument, error) {
	path = ResolvePath(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrInvalidInput, path, MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return FromBytes(path, content)
}

// FromReader reads at most MaxFileSize bytes from r and classifies them
// under the given name. Used for HTTP uploads.
func FromReader(name string, r io.Reader) (*domain.RawDocument, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrInvalidInput, name, MaxFileSize)
	}
	return FromBytes(name, content)
}

// FromBytes classifies content already held in memory.
func FromBytes(name string, content []byte) (*domain.RawDocument, error) {
	kind, mimeType, err := DetectKind(name, content)
	if err != nil {
		return nil, err
	}
	return &domain.RawDocument{
		URI:      name,
		Kind:     kind,
		MIMEType: mimeType,
		Content:  content,
	}, nil
}

// DetectKind resolves the media kind of a file.
// The extension decides when it is recognised; otherwise the leading bytes
// are sniffed. Returns domain.ErrUnsupportedType for anything else.
func DetectKind(name string, content []byte) (domain.MediaKind, string, error) {
	if mimeType, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return kindForMIME(mimeType), mimeType, nil
	}

	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mimeType := detectMIMEType(head)
	if kind := kindForMIME(mimeType); kind.IsValid() {
		return kind, mimeType, nil
	}

	return "", mimeType, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedType, filepath.Base(name), mimeType)
}

// IsSupported reports whether a path has a recognised certificate extension.
func IsSupported(path string) bool {
	_, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// detectMIMEType sniffs content and strips any parameters such as charset.
func detectMIMEType(head []byte) string {
	if len(head) == 0 {
		return "application/octet-stream"
	}
	mimeType := http.DetectContentType(head)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}

func kindForMIME(mimeType string) domain.MediaKind {
	switch mimeType {
	case "application/pdf":
		return domain.MediaKindPDF
	case "image/jpeg", "image/png", "image/tiff", "image/bmp", "image/webp":
		return domain.MediaKindImage
	default:
		return ""
	}
}
