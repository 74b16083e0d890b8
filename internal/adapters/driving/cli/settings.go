package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/certcheck/internal/core/domain"
)

var errNoSettings = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure OCR, PDF, entity recognition and server settings.

Use subcommands to change a single key or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a single setting",
	Long: `Set a single setting by its dot-separated key.

Keys:
  ocr.engine              tesseract | vision
  ocr.languages           comma-separated Tesseract languages (eng,fra)
  ocr.vision_api_key      Cloud Vision API key (empty = default credentials)
  pdf.ocr_fallback        true | false
  pdf.min_text_length     characters below which scanned-PDF OCR runs
  ner.provider            none | rules | ollama | command
  ner.model               Ollama model
  ner.base_url            Ollama URL
  ner.command             executable for the command recogniser
  ner.args                comma-separated arguments
  keywords.file           YAML keyword list file
  server.address          serve listen address
  server.allowed_origins  comma-separated CORS origins`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to choose the OCR engine and entity recogniser.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[OCR]")
	cmd.Printf("  Engine: %s\n", settings.OCR.Engine.Description())
	cmd.Printf("  Languages: %s\n", strings.Join(settings.OCR.Languages, ", "))
	if settings.OCR.Engine == domain.OCREngineVision {
		if settings.OCR.VisionAPIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.OCR.VisionAPIKey))
		} else {
			cmd.Printf("  API Key: (not set, using application default credentials)\n")
		}
	}
	cmd.Println()

	cmd.Println("[PDF]")
	cmd.Printf("  OCR fallback: %t\n", settings.PDF.OCRFallback)
	cmd.Printf("  Min text length: %d\n", settings.PDF.MinTextLength)
	cmd.Println()

	cmd.Println("[NER]")
	cmd.Printf("  Provider: %s\n", settings.NER.Provider.Description())
	switch settings.NER.Provider {
	case domain.NERProviderOllama:
		cmd.Printf("  Model: %s\n", settings.NER.Model)
		cmd.Printf("  Base URL: %s\n", settings.NER.BaseURL)
	case domain.NERProviderCommand:
		cmd.Printf("  Command: %s %s\n", settings.NER.Command, strings.Join(settings.NER.Args, " "))
	case domain.NERProviderNone, domain.NERProviderRules:
	}
	status := "configured"
	if !settings.NER.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Keywords]")
	if settings.Keywords.File != "" {
		cmd.Printf("  File: %s\n", settings.Keywords.File)
	} else {
		cmd.Println("  File: (built-in lists)")
	}
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Address)
	cmd.Printf("  Allowed origins: %s\n", strings.Join(settings.Server.AllowedOrigins, ", "))
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	display := value
	if key == "ocr.vision_api_key" {
		display = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, display)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("certcheck Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Select OCR Engine")
	cmd.Println("-------------------------")
	engines := domain.AllOCREngines()
	for i, e := range engines {
		cmd.Printf("  %d. %s\n", i+1, e.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	engine := engines[parseChoice(readLine(reader), len(engines), 1)-1]
	if err := settingsService.Set("ocr.engine", engine.String()); err != nil {
		return fmt.Errorf("failed to set OCR engine: %w", err)
	}

	if engine == domain.OCREngineVision {
		cmd.Print("Enter Cloud Vision API key (empty = application default credentials): ")
		apiKey := readPassword(reader)
		cmd.Println()
		if err := settingsService.Set("ocr.vision_api_key", apiKey); err != nil {
			return fmt.Errorf("failed to set API key: %w", err)
		}
	}
	cmd.Printf("OCR engine: %s\n\n", engine.Description())

	cmd.Println("Step 2: Select Entity Recogniser")
	cmd.Println("--------------------------------")
	providers := domain.AllNERProviders()
	defaultIdx := 1
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
		if p == current.NER.Provider {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	provider := providers[parseChoice(readLine(reader), len(providers), defaultIdx)-1]
	if err := configureNERProvider(cmd, reader, current.NER, provider); err != nil {
		return err
	}
	cmd.Printf("Entity recogniser: %s\n\n", provider.Description())

	cmd.Printf("Configuration saved to %s\n", settingsService.Path())
	return nil
}

func configureNERProvider(
	cmd *cobra.Command,
	reader *bufio.Reader,
	current domain.NERSettings,
	provider domain.NERProvider,
) error {
	values := [][2]string{{"ner.provider", provider.String()}}

	switch provider {
	case domain.NERProviderOllama:
		cmd.Printf("Enter model name [%s]: ", current.Model)
		model := readLine(reader)
		if model == "" {
			model = current.Model
		}
		cmd.Printf("Enter base URL [%s]: ", current.BaseURL)
		baseURL := readLine(reader)
		if baseURL == "" {
			baseURL = current.BaseURL
		}
		values = append(values, [2]string{"ner.model", model}, [2]string{"ner.base_url", baseURL})

	case domain.NERProviderCommand:
		cmd.Print("Enter command: ")
		command := readLine(reader)
		if command == "" {
			return errors.New("command is required for the command recogniser")
		}
		cmd.Print("Enter arguments (comma-separated): ")
		values = append(values, [2]string{"ner.command", command}, [2]string{"ner.args", readLine(reader)})

	case domain.NERProviderNone, domain.NERProviderRules:
	}

	for _, kv := range values {
		if err := settingsService.Set(kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", kv[0], err)
		}
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo on a terminal and falls back to reader.
func readPassword(reader *bufio.Reader) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
