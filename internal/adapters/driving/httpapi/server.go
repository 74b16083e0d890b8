// Package httpapi exposes certificate analysis over HTTP.
//
// Routes:
//
//	GET  /health
//	POST /api/v1/analyze        multipart upload, field "file"
//	POST /api/v1/analyze/text   JSON {"text": "..."}
//	GET  /api/v1/keywords
//	     /mcp                   streamable MCP, when mounted
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/custodia-labs/certcheck/internal/adapters/driven/filesource"
	"github.com/custodia-labs/certcheck/internal/core/ports/driving"
	"github.com/custodia-labs/certcheck/internal/logger"
)

// multipartOverhead is allowed on top of the file size for form framing.
const multipartOverhead = 1 << 20

// Config holds HTTP server configuration.
type Config struct {
	// Address to listen on (default ":8080").
	Address string

	// AllowedOrigins for CORS (default all).
	AllowedOrigins []string

	// RequestTimeout bounds each request (default 2m).
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 2 * time.Minute
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Server serves the analysis API.
type Server struct {
	cfg      Config
	analysis driving.AnalysisService
	mcp      http.Handler
	started  time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithMCP mounts an MCP handler under /mcp.
func WithMCP(h http.Handler) Option {
	return func(s *Server) {
		s.mcp = h
	}
}

// NewServer creates an HTTP server for the analysis service.
func NewServer(cfg Config, analysis driving.AnalysisService, opts ...Option) (*Server, error) {
	if analysis == nil {
		return nil, errors.New("httpapi: analysis service is required")
	}
	cfg.applyDefaults()
	s := &Server{cfg: cfg, analysis: analysis, started: time.Now()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.cfg.Address
}

// Router builds the HTTP handler with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Mcp-Session-Id"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(api chi.Router) {
		api.With(middleware.Timeout(s.cfg.RequestTimeout)).Route("/analyze", func(ar chi.Router) {
			ar.Post("/", s.handleAnalyzeFile)
			ar.Post("/text", s.handleAnalyzeText)
		})
		api.Get("/keywords", s.handleKeywords)
	})

	if s.mcp != nil {
		r.Handle("/mcp", s.mcp)
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http: listening on %s", s.cfg.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("http: shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// maxRequestBytes is the upload body limit.
func maxRequestBytes() int64 {
	return filesource.MaxFileSize + multipartOverhead
}

// requestLogger logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("http: %s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
