package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnvFile     = ".env"
	minUpstreamTimeout = 100 * time.Millisecond
)

var ErrMissingAPIKey = errors.New("API_KEY is missing in the environment or .env file")

// Config holds runtime configuration for the application.
type Config struct {
	APIKey          string
	Port            string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from the process environment after merging the
// optional .env file named by ENV_FILE. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("UPSTREAM_BASE_URL", "https://financialmodelingprep.com")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	rawTimeout := strings.TrimSpace(v.GetString("UPSTREAM_TIMEOUT"))
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be a duration with a unit such as 10s, got %q: %w", rawTimeout, err)
	}

	cfg := &Config{
		APIKey:          strings.TrimSpace(v.GetString("API_KEY")),
		Port:            v.GetString("PORT"),
		UpstreamBaseURL: v.GetString("UPSTREAM_BASE_URL"),
		UpstreamTimeout: timeout,
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.UpstreamTimeout < minUpstreamTimeout {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be at least %s, got %s", minUpstreamTimeout, cfg.UpstreamTimeout)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
