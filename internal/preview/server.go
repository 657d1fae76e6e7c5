package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/primitives/internal/config"
	"github.com/vango-dev/primitives/internal/demo"
	"github.com/vango-dev/primitives/pkg/host"
	"github.com/vango-dev/primitives/pkg/middleware"
)

// Options configures the preview server.
type Options struct {
	// Config is the project configuration. Nil uses config.New().
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the HTTP and host metrics. Nil creates a new one.
	Registry *prometheus.Registry

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Server is the preview server.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *host.Metrics
	live     *LiveServer
	router   chi.Router

	mu         sync.Mutex
	running    bool
	httpServer *http.Server
}

// NewServer creates a preview server and builds its routes.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		registry: registry,
	}
	namespace := cfg.Metrics.Namespace
	if namespace == "" {
		namespace = "primitives"
	}
	if cfg.Metrics.Enabled {
		s.metrics = host.NewMetrics(
			host.WithNamespace(namespace),
			host.WithRegistry(registry),
		)
	}
	s.live = NewLiveServer(LiveOptions{
		Logger: logger,
	})

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(
		middleware.WithTracerName("github.com/vango-dev/primitives/preview"),
		middleware.WithTracerProvider(opts.TracerProvider),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics"
		}),
	))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Prometheus(
			middleware.WithNamespace(namespace),
			middleware.WithRegistry(registry),
		))
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	r.Get("/", s.handleIndex)
	r.Get("/demo/{name}", s.handleDemo)
	r.Get("/demo/{name}/live", s.handleLive)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until ctx is done or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("preview: listening", "url", s.config.URL())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop closes live sessions and shuts the HTTP server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.live.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("preview: shutdown", "error", err)
		}
	}
}

// demoOptions returns the options every demo is run with.
func (s *Server) demoOptions() demo.Options {
	return demo.Options{
		Dir:            s.config.Direction(),
		Logger:         s.logger,
		Metrics:        s.metrics,
		Debug:          s.config.Debug,
		MaxSettleTicks: s.config.MaxSettleTicks,
	}
}
