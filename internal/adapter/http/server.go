package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/observability"
	"github.com/couchcryptid/store-seasonality-dashboard/internal/render"
)

// ChartRenderer draws the chart pair for a selection.
type ChartRenderer interface {
	Render(sel domain.Selection) (render.ChartPair, error)
}

// SessionStore keeps one Selection per browser session.
type SessionStore interface {
	NewID() string
	Get(id string) (domain.Selection, bool)
	Has(id string) bool
	Put(id string, sel domain.Selection)
	Len() int
}

// Config defines the dependencies required by Server.
type Config struct {
	Addr     string
	Debug    bool
	Renderer ChartRenderer
	Sessions SessionStore
	Ready    sharedobs.ReadinessChecker
	Metrics  *observability.Metrics
	Logger   *slog.Logger
}

// Server serves the dashboard page plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	renderer   ChartRenderer
	sessions   SessionStore
	metrics    *observability.Metrics
	logger     *slog.Logger
	debug      bool
}

// NewServer creates an HTTP server with /, /healthz, /readyz, and /metrics routes.
func NewServer(cfg Config) *Server {
	router := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		renderer: cfg.Renderer,
		sessions: cfg.Sessions,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		debug:    cfg.Debug,
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	if cfg.Debug {
		router.Use(middleware.Logger)
	}
	router.Use(middleware.Recoverer)

	router.Get("/", s.handlePage)
	router.Post("/", s.handleSubmit)
	router.Get("/healthz", sharedobs.LivenessHandler())
	router.Get("/readyz", sharedobs.ReadinessHandler(cfg.Ready))
	router.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr, "debug", s.debug)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
