package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleKeywordsResource(t *testing.T) {
	svc := &mockAnalysisService{keywords: domain.DefaultKeywordLists()}
	server := newTestServer(t, svc)

	result, err := server.handleKeywordsResource(context.Background(), makeReadResourceRequest(keywordsURI))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "certcheck://keywords", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var lists domain.KeywordLists
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &lists))
	assert.Equal(t, domain.DefaultKeywordLists(), lists)
}
