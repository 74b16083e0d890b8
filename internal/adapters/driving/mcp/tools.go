package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/filesource"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/report"
)

// AnalyzeTextInput is the input schema for the analyze_text tool.
type AnalyzeTextInput struct {
	Text string `json:"text" jsonschema:"the certificate text to analyse"`
}

// AnalyzeFileInput is the input schema for the analyze_file tool.
type AnalyzeFileInput struct {
	Path string `json:"path" jsonschema:"local path to a certificate image or PDF"`
}

// AnalysisOutput is the output schema for both analysis tools.
type AnalysisOutput struct {
	Score          int      `json:"score"`
	Verdict        string   `json:"verdict"`
	Label          string   `json:"label"`
	Suspicious     []string `json:"suspicious_keywords"`
	Missing        []string `json:"missing_terms"`
	Degrees        []string `json:"degree_keywords"`
	Organizations  []string `json:"organizations"`
	Qualifications []string `json:"qualifications"`
	URI            string   `json:"uri,omitempty"`
	Extractor      string   `json:"extractor,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	TextPreview    string   `json:"text_preview,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Score certificate text for signs of forgery",
	}, s.handleAnalyzeText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_file",
		Description: "Extract text from a certificate image or PDF and score it",
	}, s.handleAnalyzeFile)
}

// handleAnalyzeText handles the analyze_text tool invocation.
func (s *Server) handleAnalyzeText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeTextInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	analysis := s.ports.Analysis.AnalyzeText(ctx, input.Text)
	out := toOutput(analysis.Report)
	out.URI = analysis.URI
	out.Warnings = analysis.Warnings
	return nil, out, nil
}

// handleAnalyzeFile handles the analyze_file tool invocation.
func (s *Server) handleAnalyzeFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeFileInput,
) (*mcp.CallToolResult, AnalysisOutput, error) {
	if input.Path == "" {
		return nil, AnalysisOutput{}, errors.New("path is required")
	}

	raw, err := filesource.Load(input.Path)
	if err != nil {
		return nil, AnalysisOutput{}, fmt.Errorf("loading certificate: %w", err)
	}

	analysis, err := s.ports.Analysis.AnalyzeDocument(ctx, raw)
	if err != nil {
		return nil, AnalysisOutput{}, fmt.Errorf("analysing certificate: %w", err)
	}

	out := toOutput(analysis.Report)
	out.URI = analysis.URI
	out.Extractor = analysis.Extractor
	out.Warnings = analysis.Warnings
	out.TextPreview = report.Preview(analysis.Text)
	return nil, out, nil
}

func toOutput(r domain.AnalysisReport) AnalysisOutput {
	return AnalysisOutput{
		Score:          int(r.Score),
		Verdict:        r.Verdict.String(),
		Label:          r.Verdict.Label(),
		Suspicious:     r.Suspicious.Terms,
		Missing:        r.Missing.Terms,
		Degrees:        r.Degrees.Terms,
		Organizations:  r.Entities.Organizations,
		Qualifications: r.Entities.Qualifications,
	}
}
