// Package cli provides the certcheck command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// KeywordWriter writes the built-in keyword lists to an editable file.
type KeywordWriter interface {
	Path() string
	WriteDefaults() error
}

// Services are the core services driven by the commands.
type Services struct {
	Analysis driving.AnalysisService
	Settings driving.SettingsService
	Keywords KeywordWriter

	// Close releases long-lived collaborators. Optional.
	Close func()
}

// Bootstrap builds the services for a config directory ("" uses the default).
type Bootstrap func(configDir string) (*Services, error)

var (
	analysisService driving.AnalysisService
	settingsService driving.SettingsService
	keywordWriter   KeywordWriter
	closeServices   func()

	bootstrap Bootstrap

	verbose   bool
	configDir string
)

var errNotConfigured = errors.New("analysis service not configured")

// annotationNoServices marks commands that run without core services.
const annotationNoServices = "certcheck/no-services"

var rootCmd = &cobra.Command{
	Use:   "certcheck",
	Short: "Detect fake academic certificates",
	Long: `certcheck scores academic certificates for signs of forgery.

It extracts text from a certificate image or PDF, looks for suspicious
keywords (misspelled institutions, placeholder wording) and for terms a
genuine certificate is expected to carry, and reports a 0-100 score with a
verdict: Likely Genuine, Suspicious or Likely Fake.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if closeServices != nil {
			closeServices()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.certcheck)")
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		analysisService, settingsService, keywordWriter, closeServices = nil, nil, nil, nil
		return
	}
	analysisService = s.Analysis
	settingsService = s.Settings
	keywordWriter = s.Keywords
	closeServices = s.Close
}

// SetBootstrap registers the function that builds services once flags
// are parsed. It is skipped when services were injected with SetServices.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if analysisService != nil || bootstrap == nil || cmd.Annotations[annotationNoServices] != "" {
		return nil
	}
	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
