package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.Black)
	}
	return img
}

func encode(t *testing.T, fn func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf, testImage()))
	return buf.Bytes()
}

func TestToPNG(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"jpeg", func(t *testing.T) []byte {
			return encode(t, func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) })
		}},
		{"bmp", func(t *testing.T) []byte { return encode(t, bmp.Encode) }},
		{"tiff", func(t *testing.T) []byte {
			return encode(t, func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToPNG(tt.data(t))
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
		})
	}

	t.Run("png passes through", func(t *testing.T) {
		in := encode(t, png.Encode)
		out, err := ToPNG(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := ToPNG([]byte("not an image"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode image")
	})
}
