package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/certcheck/internal/adapters/driving/mcp"
)

var (
	serveAddress string
	serveNoMCP   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the certcheck HTTP API.

Routes:
  GET  /health                 liveness probe
  POST /api/v1/analyze         multipart upload, field "file"
  POST /api/v1/analyze/text    JSON body {"text": "..."}
  GET  /api/v1/keywords        active reference lists
  /mcp                         MCP over streamable HTTP (unless --no-mcp)

The listen address and CORS origins default to the server.* settings.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "addr", "a", "", "listen address (overrides server.address)")
	serveCmd.Flags().BoolVar(&serveNoMCP, "no-mcp", false, "do not mount the MCP endpoint")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := newHTTPServer()
	if err != nil {
		return err
	}

	cmd.Printf("certcheck API listening on %s\n", server.Address())
	return server.Run(cmd.Context())
}

func newHTTPServer() (*httpapi.Server, error) {
	if analysisService == nil {
		return nil, errNotConfigured
	}

	cfg := httpapi.Config{Address: serveAddress}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}
		if cfg.Address == "" {
			cfg.Address = settings.Server.Address
		}
		cfg.AllowedOrigins = settings.Server.AllowedOrigins
	}

	var opts []httpapi.Option
	if !serveNoMCP {
		mcpServer, err := mcp.NewServer(&mcp.Ports{Analysis: analysisService})
		if err != nil {
			return nil, fmt.Errorf("failed to create MCP server: %w", err)
		}
		opts = append(opts, httpapi.WithMCP(mcpServer.Handler()))
	}

	return httpapi.NewServer(cfg, analysisService, opts...)
}
