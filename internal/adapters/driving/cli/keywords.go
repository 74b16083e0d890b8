package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keywordsJSON bool

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the active reference keyword lists",
	Long: `Show the keyword lists used for scoring.

Suspicious keywords cost 15 points each when present. Authentic terms cost
10 points each when absent. Degree keywords are reported but not scored.

Run 'certcheck keywords init' to write the built-in lists to an editable
YAML file.`,
	RunE: runKeywords,
}

var keywordsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in lists to an editable YAML file",
	RunE:  runKeywordsInit,
}

func init() {
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "output lists as JSON")
	keywordsCmd.AddCommand(keywordsInitCmd)
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errNotConfigured
	}

	lists := analysisService.Keywords()
	if keywordsJSON {
		data, err := json.MarshalIndent(lists, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal keywords: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printList := func(title string, terms []string) {
		cmd.Printf("%s (%d)\n", title, len(terms))
		if len(terms) == 0 {
			cmd.Println("  (none)")
		} else {
			cmd.Printf("  %s\n", strings.Join(terms, ", "))
		}
		cmd.Println()
	}
	printList("Suspicious", lists.Suspicious)
	printList("Authentic", lists.Authentic)
	printList("Degrees", lists.Degrees)
	return nil
}

func runKeywordsInit(cmd *cobra.Command, _ []string) error {
	if keywordWriter == nil {
		return errors.New("keyword store not configured")
	}

	if err := keywordWriter.WriteDefaults(); err != nil {
		return fmt.Errorf("failed to write keyword file: %w", err)
	}
	cmd.Printf("Wrote keyword lists to %s\n", keywordWriter.Path())

	if settingsService == nil {
		return nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.Keywords.File == "" {
		if err := settingsService.Set("keywords.file", keywordWriter.Path()); err != nil {
			return fmt.Errorf("failed to save keywords.file: %w", err)
		}
		cmd.Println("Set keywords.file; edit the file and rerun certcheck to apply.")
	}
	return nil
}
