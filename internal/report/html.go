package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// HTML writes a standalone HTML page for the analysis.
func HTML(w io.Writer, a *domain.DocumentAnalysis) error {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(a)), &body); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}

	title := "Certificate analysis"
	if a.URI != "" {
		title += ": " + a.URI
	}
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body class="verdict-%s">
%s</body>
</html>
`, html.EscapeString(title), a.Report.Verdict, body.String())
	return err
}
