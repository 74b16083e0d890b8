package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for certcheck resources.
	uriScheme = "certcheck://"

	keywordsURI = uriScheme + "keywords"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         keywordsURI,
		Name:        "keywords",
		Description: "Suspicious, authentic and degree keyword lists used for scoring",
		MIMEType:    "application/json",
	}, s.handleKeywordsResource)
}

// handleKeywordsResource returns the active keyword lists.
func (s *Server) handleKeywordsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Analysis.Keywords(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling keywords: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
