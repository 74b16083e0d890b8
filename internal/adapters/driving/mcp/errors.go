// Package mcp provides an MCP (Model Context Protocol) server adapter for certcheck.
// It lets AI assistants submit certificate text or files for analysis and
// read the active keyword lists.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")
