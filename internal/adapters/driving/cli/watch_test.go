package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/report"
)

func TestWatchCmd_RequiresDir(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestWatchCmd_MissingDir(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	SetServices(nil)
	_, err := execute(t, "watch", t.TempDir())
	assert.ErrorIs(t, err, errNotConfigured)
}

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd, stdout, stderr
}

func TestProcessWatched_RendersReport(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	path := writeFile(t, "degree.png", []byte("\x89PNG\r\n\x1a\nfake"))
	cmd, stdout, stderr := newTestCommand()

	processWatched(cmd, stdout, path, report.FormatText)
	assert.Contains(t, stdout.String(), "70/100")
	assert.Empty(t, stderr.String())
}

func TestProcessWatched_SkipsFailures(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	path := writeFile(t, "notes.txt", []byte("plain"))
	cmd, stdout, stderr := newTestCommand()

	processWatched(cmd, stdout, path, report.FormatText)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "skipping")
}
