// Package config resolves application settings from a secrets file with an
// environment-variable fallback.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

const defaultSecretsFile = "secrets.env"

// Source resolves a named configuration value. Sources are tried in
// priority order; the first non-empty hit wins.
type Source interface {
	Lookup(name string) (string, bool)
}

// FileSource reads dotenv-format secrets from a file. A missing or
// unreadable file resolves nothing.
type FileSource struct {
	values map[string]string
}

// NewFileSource loads the secrets file at path.
func NewFileSource(path string) FileSource {
	values, err := godotenv.Read(path)
	if err != nil {
		return FileSource{}
	}
	return FileSource{values: values}
}

func (s FileSource) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// EnvSource resolves from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port         int           `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

// Config holds the application configuration.
type Config struct {
	YouTubeAPIKey string
	DefaultRegion string
	AuthUsername  string
	AuthPassword  string
	Server        ServerConfig
}

// Load resolves application settings from the given sources in priority
// order. With no sources it uses the secrets file named by SECRETS_FILE
// (default "secrets.env"), then the process environment. A missing API key
// is not a load error; the dashboard surfaces it as a configuration
// problem instead of refusing to start.
func Load(sources ...Source) (*Config, error) {
	if len(sources) == 0 {
		path := os.Getenv("SECRETS_FILE")
		if path == "" {
			path = defaultSecretsFile
		}
		sources = []Source{NewFileSource(path), EnvSource{}}
	}

	cfg := &Config{
		YouTubeAPIKey: resolve(sources, "YOUTUBE_API_KEY", ""),
		DefaultRegion: strings.ToUpper(resolve(sources, "REGION_CODE", "KR")),
		AuthUsername:  resolve(sources, "AUTH_USERNAME", ""),
		AuthPassword:  resolve(sources, "AUTH_PASSWORD", ""),
	}

	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	return cfg, nil
}

func resolve(sources []Source, name, fallback string) string {
	for _, src := range sources {
		if v, ok := src.Lookup(name); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return fallback
}

// Validate checks whether an API key is configured.
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: set YOUTUBE_API_KEY in the secrets file or environment", ErrMissingAPIKey)
	}
	return nil
}
