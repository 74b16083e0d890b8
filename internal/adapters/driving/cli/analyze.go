package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/filesource"
	"github.com/custodia-labs/certcheck/internal/core/domain"
	"github.com/custodia-labs/certcheck/internal/report"
)

var (
	analyzeText   string
	analyzeFormat string
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [file]",
	Aliases: []string{"analyse"},
	Short:   "Analyse a certificate",
	Long: `Analyse a certificate image (JPEG, PNG, TIFF, BMP, WebP) or PDF.

Text is extracted with OCR or pdftotext, then scored. Use --text to score
text you already have, or pipe text on stdin.

Examples:
  certcheck analyze degree.pdf
  certcheck analyze scan.png --format json
  certcheck analyze --text "This is to certify that ..."
  pdftotext degree.pdf - | certcheck analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "analyse this text instead of a file")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text",
		"output format (text, json, markdown, html)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	format, err := report.ParseFormat(analyzeFormat)
	if err != nil {
		return err
	}

	// An explicit --text "" is valid input.
	textSet := cmd.Flags().Changed("text")

	var analysis *domain.DocumentAnalysis
	switch {
	case len(args) == 1 && textSet:
		return errors.New("pass either a file or --text, not both")
	case len(args) == 1:
		analysis, err = analyzeFile(cmd, args[0])
	case textSet:
		analysis = analysisService.AnalyzeText(cmd.Context(), analyzeText)
	default:
		text, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		analysis = analysisService.AnalyzeText(cmd.Context(), text)
	}
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), analysis, format)
}

func analyzeFile(cmd *cobra.Command, path string) (*domain.DocumentAnalysis, error) {
	raw, err := filesource.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	analysis, err := analysisService.AnalyzeDocument(cmd.Context(), raw)
	if err != nil {
		return nil, fmt.Errorf("failed to analyse document: %w", err)
	}
	return analysis, nil
}

// readStdin reads piped text. An interactive terminal has nothing to read.
func readStdin(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.New("nothing to analyse: pass a file, --text, or pipe text on stdin")
	}

	data, err := io.ReadAll(io.LimitReader(in, filesource.MaxFileSize))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
