package host

import (
	"log/slog"

	"github.com/vango-dev/primitives/pkg/dom"
)

const (
	defaultTracerName     = "github.com/vango-dev/primitives/host"
	defaultMaxSettleTicks = 16
)

// Config configures a Root.
type Config struct {
	// Logger receives mount, tick and panic logs. Default: slog.Default().
	Logger *slog.Logger

	// Document is the ambient owner document exposed to components through
	// OwnerDocument. Default: the container's document.
	Document *dom.Document

	// Debug enables hook order validation for the Root's components and
	// debug logs.
	Debug bool

	// Metrics records render and commit counts. Nil disables metrics.
	Metrics *Metrics

	// TracerName names the OpenTelemetry tracer used for spans.
	TracerName string

	// MaxSettleTicks bounds Settle. Default: 16.
	MaxSettleTicks int
}

// Option configures a Root.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithDocument sets the ambient owner document.
func WithDocument(doc *dom.Document) Option {
	return func(c *Config) {
		c.Document = doc
	}
}

// WithDebug enables debug mode.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithMaxSettleTicks bounds the number of ticks Settle runs.
func WithMaxSettleTicks(n int) Option {
	return func(c *Config) {
		c.MaxSettleTicks = n
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Logger:         slog.Default(),
		TracerName:     defaultTracerName,
		MaxSettleTicks: defaultMaxSettleTicks,
	}
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TracerName == "" {
		cfg.TracerName = defaultTracerName
	}
	if cfg.MaxSettleTicks <= 0 {
		cfg.MaxSettleTicks = defaultMaxSettleTicks
	}
	return cfg
}
