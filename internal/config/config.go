// Package config provides file- and environment-driven configuration for costar.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, COSTAR_*
// environment variables. Command-line flags are applied by the caller on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Defaults.
const (
	DefaultReference = "Kevin Bacon"
	DefaultDataset   = "Movies.txt"
	DefaultListen    = "127.0.0.1:8080"
	DefaultQuery     = "SELECT title, actor FROM casts ORDER BY title, position"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	// Reference is the fixed root of every query.
	Reference string  `yaml:"reference"`
	Dataset   Dataset `yaml:"dataset"`
	Server    Server  `yaml:"server"`
	Log       Logging `yaml:"log"`
}

// Dataset describes where grouped membership records come from.
type Dataset struct {
	Source      string `yaml:"source"`
	Path        string `yaml:"path"`
	Watch       bool   `yaml:"watch"`
	DatabaseURL Secret `yaml:"database_url"`
	Query       string `yaml:"query"`
}

// Server holds HTTP settings for `costar serve`.
type Server struct {
	Listen      string   `yaml:"listen"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Logging selects logrus level and formatter.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Reference: DefaultReference,
		Dataset: Dataset{
			Source: SourceFile,
			Path:   DefaultDataset,
			Query:  DefaultQuery,
		},
		Server: Server{Listen: DefaultListen},
		Log:    Logging{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Reference = envOrDefault("COSTAR_REFERENCE", c.Reference)
	c.Dataset.Source = envOrDefault("COSTAR_DATASET_SOURCE", c.Dataset.Source)
	c.Dataset.Path = envOrDefault("COSTAR_DATASET", c.Dataset.Path)
	c.Dataset.DatabaseURL = Secret(envOrDefault("COSTAR_DATABASE_URL", c.Dataset.DatabaseURL.Value()))
	c.Dataset.Query = envOrDefault("COSTAR_DATASET_QUERY", c.Dataset.Query)
	c.Server.Listen = envOrDefault("COSTAR_LISTEN", c.Server.Listen)
	if v := os.Getenv("COSTAR_CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	c.Log.Level = envOrDefault("COSTAR_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOrDefault("COSTAR_LOG_FORMAT", c.Log.Format)

	if v, ok := os.LookupEnv("COSTAR_WATCH"); ok {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COSTAR_WATCH must be a boolean: %w", err)
		}
		c.Dataset.Watch = watch
	}

	return nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	c.Reference = strings.TrimSpace(c.Reference)
	if c.Reference == "" {
		return fmt.Errorf("reference must not be empty")
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("server.cors_origins must list explicit origins, not %q", origin)
		}
	}

	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	switch c.Dataset.Source {
	case SourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("dataset.path is required for source %q", SourceFile)
		}
	case SourcePostgres:
		url := c.Dataset.DatabaseURL.Value()
		if url == "" {
			return fmt.Errorf("dataset.database_url is required for source %q", SourcePostgres)
		}
		if !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
			return fmt.Errorf("dataset.database_url must use the postgres:// or postgresql:// scheme")
		}
		if c.Dataset.Watch {
			return fmt.Errorf("dataset.watch is only supported for source %q", SourceFile)
		}
		if strings.TrimSpace(c.Dataset.Query) == "" {
			return fmt.Errorf("dataset.query is required for source %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("dataset.source must be %q or %q, got %q", SourceFile, SourcePostgres, c.Dataset.Source)
	}

	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
