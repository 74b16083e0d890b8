package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

func TestKeywordsCmd_Lists(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "keywords")
	require.NoError(t, err)

	defaults := domain.DefaultKeywordLists()
	assert.Contains(t, out, "Suspicious (")
	assert.Contains(t, out, "Authentic (")
	assert.Contains(t, out, "Degrees (")
	assert.Contains(t, out, defaults.Suspicious[0])
}

func TestKeywordsCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() { keywordsJSON = false }()

	out, err := execute(t, "keywords", "--json")
	require.NoError(t, err)

	var lists domain.KeywordLists
	require.NoError(t, json.Unmarshal([]byte(out), &lists))
	assert.Equal(t, domain.DefaultKeywordLists(), lists)
}

func TestKeywordsInitCmd(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "keywords", "init")
	require.NoError(t, err)
	assert.Equal(t, 1, ts.keywords.writes)
	assert.Contains(t, out, "Wrote keyword lists to /tmp/certcheck/keywords.yaml")
	assert.Contains(t, out, "Set keywords.file")

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/certcheck/keywords.yaml", settings.Keywords.File)
}

func TestKeywordsInitCmd_KeepsConfiguredFile(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, ts.settings.Set("keywords.file", "/etc/certcheck/lists.yaml"))

	out, err := execute(t, "keywords", "init")
	require.NoError(t, err)
	assert.NotContains(t, out, "Set keywords.file")

	settings, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "/etc/certcheck/lists.yaml", settings.Keywords.File)
}

func TestKeywordsInitCmd_WriteError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.keywords.err = errors.New("file exists")

	_, err := execute(t, "keywords", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write keyword file: file exists")
}

func TestKeywordsInitCmd_NotConfigured(t *testing.T) {
	SetServices(&Services{Analysis: &mockAnalysisService{}})
	defer SetServices(nil)

	_, err := execute(t, "keywords", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword store not configured")
}
