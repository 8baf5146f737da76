package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/stream"
)

const (
	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful server shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultMetricsNamespace prefixes every Prometheus metric.
	DefaultMetricsNamespace = "wutup"

	// DefaultTracerName names the OpenTelemetry tracer.
	DefaultTracerName = "wutup"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"wutup.json", "wutup.yaml", "wutup.yml", "wutup.toml"}

// Config represents the complete wutup configuration file.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`

	// Stream contains table rendering configuration.
	Stream StreamConfig `json:"stream" yaml:"stream" toml:"stream"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish" yaml:"publish" toml:"publish"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" toml:"metrics"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing" yaml:"tracing" toml:"tracing"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log" toml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty" toml:"shutdownTimeout,omitempty"`

	// AllowedOrigins lists origins accepted by the live WebSocket endpoint.
	// Empty means same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty" yaml:"allowedOrigins,omitempty" toml:"allowedOrigins,omitempty"`
}

// StreamConfig contains table rendering settings.
type StreamConfig struct {
	// CurrentStreamID is the container that gets Attend/Decline controls.
	CurrentStreamID string `json:"currentStreamId,omitempty" yaml:"currentStreamId,omitempty" toml:"currentStreamId,omitempty"`

	// NamesPolicy is strict, pad, or truncate.
	NamesPolicy string `json:"namesPolicy,omitempty" yaml:"namesPolicy,omitempty" toml:"namesPolicy,omitempty"`

	// Placeholders override the stock placeholder content.
	Placeholders stream.Placeholders `json:"placeholders" yaml:"placeholders" toml:"placeholders"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	Bucket   string `json:"bucket,omitempty" yaml:"bucket,omitempty" toml:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty" toml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`

	// PathStyle forces path-style addressing (MinIO and other S3-compatible stores).
	PathStyle bool `json:"pathStyle,omitempty" yaml:"pathStyle,omitempty" toml:"pathStyle,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	Subsystem string `json:"subsystem,omitempty" yaml:"subsystem,omitempty" toml:"subsystem,omitempty"`

	// Labels are constant labels added to every metric.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`

	// Buckets override the request duration histogram buckets.
	Buckets []float64 `json:"buckets,omitempty" yaml:"buckets,omitempty" toml:"buckets,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty" toml:"tracerName,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the first known config file in dir.
func Load(dir string) (*Config, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No wutup.json, wutup.yaml, or wutup.toml found in " + dir)
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension: .json, .yaml/.yml, or .toml.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").WithDetail("No config file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	if err := decode(filepath.Ext(path), data, cfg); err != nil {
		return nil, err
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(ext string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); stderrors.Is(err, io.EOF) {
			err = nil
		}
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return errors.New("E121").
			WithDetail("Unsupported extension " + strconv.Quote(ext)).
			WithSuggestion("Use .json, .yaml, .yml, or .toml")
	}
	if err != nil {
		return errors.New("E120").
			WithDetail("Failed to parse config: " + err.Error()).
			Wrap(err)
	}
	return nil
}

// SaveTo writes the configuration to path in the format implied by its
// extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return errors.New("E121").WithDetail("Unsupported extension " + strconv.Quote(filepath.Ext(path)))
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Stream.CurrentStreamID == "" {
		c.Stream.CurrentStreamID = stream.CurrentEventStreamID
	}
	if c.Stream.NamesPolicy == "" {
		c.Stream.NamesPolicy = string(stream.PolicyStrict)
	}
	c.Stream.Placeholders = c.Stream.Placeholders.Merge(stream.DefaultPlaceholders())

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("server.port must be between 0 and 65535")
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E122").
			WithDetail("server.shutdownTimeout: " + err.Error())
	}
	if _, err := stream.ParseNamesPolicy(c.Stream.NamesPolicy); err != nil {
		return errors.New("E122").WithDetail("stream.namesPolicy: " + err.Error())
	}
	if c.Stream.Placeholders.ImageSize < 0 {
		return errors.New("E122").WithDetail("stream.placeholders.imageSize must not be negative")
	}
	for i := 1; i < len(c.Metrics.Buckets); i++ {
		if c.Metrics.Buckets[i] <= c.Metrics.Buckets[i-1] {
			return errors.New("E122").WithDetail("metrics.buckets must be strictly increasing")
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E122").WithDetail("log.format must be text or json")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// StreamOptions converts the stream section into render options.
// Validate must have succeeded.
func (c *Config) StreamOptions() []stream.Option {
	policy, _ := stream.ParseNamesPolicy(c.Stream.NamesPolicy)
	return []stream.Option{
		stream.WithPlaceholders(c.Stream.Placeholders),
		stream.WithNamesPolicy(policy),
		stream.WithCurrentStreamID(c.Stream.CurrentStreamID),
	}
}

// FindProjectRoot walks up directories to find one holding a config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ConfigFileNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No config file found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its parents. It returns defaults when no config file exists.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.CodeOf(err) == "E141" {
			return New(), nil
		}
		return nil, err
	}

	return Load(root)
}
