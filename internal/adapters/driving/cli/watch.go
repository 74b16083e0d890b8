package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/filesource"
	"github.com/custodia-labs/certcheck/internal/logger"
	"github.com/custodia-labs/certcheck/internal/report"
)

var watchFormat string

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Analyse certificates as they appear in a directory",
	Long: `Watch a directory and analyse every certificate file created or
modified in it, one at a time. Hidden files and unsupported types are
ignored. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "text",
		"output format (text, json, markdown, html)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	format, err := report.ParseFormat(watchFormat)
	if err != nil {
		return err
	}

	watcher := filesource.NewWatcher(args[0])
	defer watcher.Close()

	paths, err := watcher.Watch(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", args[0], err)
	}

	cmd.PrintErrf("Watching %s for certificates (Ctrl+C to stop)\n", watcher.Root())

	out := cmd.OutOrStdout()
	for path := range paths {
		processWatched(cmd, out, path, format)
	}
	return nil
}

// processWatched analyses one file. Failures are reported and skipped so a
// single bad file does not stop the watch.
func processWatched(cmd *cobra.Command, out io.Writer, path string, format report.Format) {
	logger.Section("watch: " + path)

	analysis, err := analyzeFile(cmd, path)
	if err != nil {
		cmd.PrintErrf("skipping %s: %v\n", path, err)
		return
	}

	if err := report.Render(out, analysis, format); err != nil {
		cmd.PrintErrf("failed to render report for %s: %v\n", path, err)
		return
	}
	fmt.Fprintln(out)
}
