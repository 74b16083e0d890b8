package logger

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture routes log output into a buffer for the duration of a test.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("Suspicious: %v", []string{"harverd"}) }, "[DEBUG] Suspicious: [harverd]\n"},
		{"info", func() { Info("Score: %d/100 (%s)", 35, "Likely Fake") }, "[INFO] Score: 35/100 (Likely Fake)\n"},
		{"warn", func() { Warn("Extraction failed: %v", "pdftotext exited 1") }, "[WARN] Extraction failed: pdftotext exited 1\n"},
		{"section", func() { Section("Certificate Analysis") }, "\n=== Certificate Analysis ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.expected, buf.String())
		})

		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log()
			assert.Empty(t, buf.String())
		})
	}
}

func TestStage(t *testing.T) {
	t.Run("logs start and duration", func(t *testing.T) {
		buf := capture(t, true)

		done := Stage("Text extraction")
		done()

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if assert.Len(t, lines, 2) {
			assert.Equal(t, "[DEBUG] Text extraction: started", lines[0])
			assert.Regexp(t, regexp.MustCompile(`^\[DEBUG\] Text extraction: done in \d+(\.\d+)?[µnm]?s$`), lines[1])
		}
	})

	t.Run("quiet when not verbose", func(t *testing.T) {
		buf := capture(t, false)

		Stage("OCR")()

		assert.Empty(t, buf.String())
	})
}

// lockedBuffer serialises writes from concurrent loggers.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestConcurrentAccess(t *testing.T) {
	out := &lockedBuffer{}
	SetOutput(out)
	SetVerbose(true)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Debug("analysis %d", i)
			Stage("scoring")()
			IsVerbose()
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, strings.Count(out.buf.String(), "[DEBUG]"))
}
