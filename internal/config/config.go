package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/direction"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "primitives.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 7070

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMaxSettleTicks bounds how long a demo may keep changing.
	DefaultMaxSettleTicks = 16
)

// Config represents primitives.json.
type Config struct {
	// Serve configures the preview server.
	Serve ServeConfig `json:"serve,omitempty"`

	// Render configures HTML output of demos.
	Render RenderConfig `json:"render,omitempty"`

	// Metrics configures the Prometheus collectors.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Publish configures the static export.
	Publish PublishConfig `json:"publish,omitempty"`

	// Debug enables hook order validation.
	Debug bool `json:"debug,omitempty"`

	// MaxSettleTicks is the tick limit when settling a demo.
	MaxSettleTicks int `json:"maxSettleTicks,omitempty"`

	// configPath is the path the config was loaded from.
	configPath string
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	// Dir is the default text direction, "ltr" or "rtl".
	Dir string `json:"dir,omitempty"`

	// Pretty indents the rendered HTML.
	Pretty bool `json:"pretty,omitempty"`

	// EventMarkers adds data-on-<type> attributes to elements with listeners.
	EventMarkers bool `json:"eventMarkers,omitempty"`

	// StyleSheets are linked from every rendered page.
	StyleSheets []string `json:"styleSheets,omitempty"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Namespace string `json:"namespace,omitempty"`
}

// PublishConfig configures the static export of the demos.
type PublishConfig struct {
	// Out is a local directory to write to. It is used when Bucket is empty.
	Out string `json:"out,omitempty"`

	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle addresses the bucket in the path, as MinIO expects.
	PathStyle bool `json:"pathStyle,omitempty"`

	// Directions lists the directions every demo is exported in. The first
	// one is linked from the index.
	Directions []string `json:"directions,omitempty"`
}

// New creates a config with defaults.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	c.Metrics.Enabled = true
	return c
}

// Load reads primitives.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Missing fields get defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E303").
				WithDetail("No " + ConfigFileName + " found at " + path)
		}
		return nil, errors.New("E304").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E304").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// LoadOrDefault loads primitives.json from dir, falling back to defaults
// when there is none. Parse errors are still returned.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}

// Save writes the config back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the config to path as indented JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E304").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E304").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Render.Dir == "" {
		c.Render.Dir = string(direction.Default)
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "primitives"
	}
	if c.MaxSettleTicks <= 0 {
		c.MaxSettleTicks = DefaultMaxSettleTicks
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return errors.New("E302").
			WithDetailf("serve.port must be between 1 and 65535, got %d", c.Serve.Port)
	}
	if _, err := direction.Parse(c.Render.Dir); err != nil {
		return err
	}
	if _, err := c.PublishDirections(); err != nil {
		return err
	}
	return nil
}

// PublishDirections parses Publish.Directions. Without any it returns the
// configured render direction.
func (c *Config) PublishDirections() ([]direction.Direction, error) {
	if len(c.Publish.Directions) == 0 {
		return []direction.Direction{c.Direction()}, nil
	}
	dirs := make([]direction.Direction, 0, len(c.Publish.Directions))
	for _, s := range c.Publish.Directions {
		d, err := direction.Parse(s)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// Direction returns the configured default direction. It assumes Validate
// passed and falls back to direction.Default otherwise.
func (c *Config) Direction() direction.Direction {
	d, err := direction.Parse(c.Render.Dir)
	if err != nil {
		return direction.Default
	}
	return d
}

// Address returns the preview server listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Serve.Host, strconv.Itoa(c.Serve.Port))
}

// URL returns the preview server base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Exists reports whether dir contains primitives.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
