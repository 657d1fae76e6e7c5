package host

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/primitives/pkg/dom"
)

// MetricsConfig configures host metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "primitives").
	Namespace string

	// Subsystem is the metrics subsystem (default: "host").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures host metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "primitives",
		Subsystem: "host",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics shared by the Roots it is passed to.
//
// Metrics collected:
//   - primitives_host_renders_total: component renders
//   - primitives_host_commits_total: commits to the dom
//   - primitives_host_ticks_total: post-commit ticks
//   - primitives_host_effects_run_total: mount effects run
//   - primitives_host_render_panics_total: recovered render panics
//   - primitives_host_mounted_components: components currently mounted
//   - primitives_host_document_listeners: listeners on the roots' documents
type Metrics struct {
	renders      prometheus.Counter
	commits      prometheus.Counter
	ticks        prometheus.Counter
	effectsRun   prometheus.Counter
	renderPanics prometheus.Counter

	collector *rootCollector
}

// NewMetrics creates and registers host metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	m := &Metrics{
		renders:      counter("renders_total", "Total number of component renders"),
		commits:      counter("commits_total", "Total number of commits to the dom"),
		ticks:        counter("ticks_total", "Total number of post-commit ticks"),
		effectsRun:   counter("effects_run_total", "Total number of mount effects run"),
		renderPanics: counter("render_panics_total", "Total number of recovered component panics"),
		collector:    newRootCollector(config),
	}
	if config.Registry != nil {
		config.Registry.MustRegister(m.collector)
	}
	return m
}

func (m *Metrics) incRenders() {
	if m != nil {
		m.renders.Inc()
	}
}

func (m *Metrics) incCommits() {
	if m != nil {
		m.commits.Inc()
	}
}

func (m *Metrics) incTicks() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *Metrics) addEffectsRun(n int) {
	if m != nil && n > 0 {
		m.effectsRun.Add(float64(n))
	}
}

func (m *Metrics) incRenderPanics() {
	if m != nil {
		m.renderPanics.Inc()
	}
}

func (m *Metrics) track(r *Root) {
	if m != nil {
		m.collector.add(r)
	}
}

func (m *Metrics) untrack(r *Root) {
	if m != nil {
		m.collector.remove(r)
	}
}

// rootCollector reports gauges computed from the live Roots at scrape time.
type rootCollector struct {
	mu    sync.Mutex
	roots map[*Root]struct{}

	mountedDesc   *prometheus.Desc
	listenersDesc *prometheus.Desc
}

func newRootCollector(config MetricsConfig) *rootCollector {
	return &rootCollector{
		roots: make(map[*Root]struct{}),
		mountedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(config.Namespace, config.Subsystem, "mounted_components"),
			"Number of components currently mounted",
			nil, config.ConstLabels,
		),
		listenersDesc: prometheus.NewDesc(
			prometheus.BuildFQName(config.Namespace, config.Subsystem, "document_listeners"),
			"Number of listeners registered on the roots' documents",
			nil, config.ConstLabels,
		),
	}
}

func (c *rootCollector) add(r *Root) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roots[r] = struct{}{}
}

func (c *rootCollector) remove(r *Root) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.roots, r)
}

// Describe implements prometheus.Collector.
func (c *rootCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.mountedDesc
	ch <- c.listenersDesc
}

// Collect implements prometheus.Collector.
func (c *rootCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	var mounted int64
	docs := make(map[*dom.Document]struct{})
	for r := range c.roots {
		mounted += r.components.Load()
		docs[r.doc] = struct{}{}
	}
	c.mu.Unlock()

	listeners := 0
	for d := range docs {
		listeners += d.ListenerCount()
	}

	ch <- prometheus.MustNewConstMetric(c.mountedDesc, prometheus.GaugeValue, float64(mounted))
	ch <- prometheus.MustNewConstMetric(c.listenersDesc, prometheus.GaugeValue, float64(listeners))
}
