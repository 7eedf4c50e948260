// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"resume-analyzer"`

	// Advisor (optional external enrichment). Leaving the API key empty
	// disables the advisor entirely; all output then comes from the
	// deterministic engine.
	AdvisorAPIKey  string        `env:"ADVISOR_API_KEY"`
	AdvisorBaseURL string        `env:"ADVISOR_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	AdvisorModel   string        `env:"ADVISOR_MODEL" envDefault:"meta-llama/llama-3.1-8b-instruct:free"`
	AdvisorTimeout time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"30s"`

	// Advisor backoff configuration
	AdvisorBackoffMaxElapsedTime  time.Duration `env:"ADVISOR_BACKOFF_MAX_ELAPSED_TIME" envDefault:"60s"`
	AdvisorBackoffInitialInterval time.Duration `env:"ADVISOR_BACKOFF_INITIAL_INTERVAL" envDefault:"1s"`
	AdvisorBackoffMaxInterval     time.Duration `env:"ADVISOR_BACKOFF_MAX_INTERVAL" envDefault:"10s"`
	AdvisorBackoffMultiplier      float64       `env:"ADVISOR_BACKOFF_MULTIPLIER" envDefault:"2.0"`

	// HTTP server
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"60"`
	MaxBodyBytes          int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// AdvisorEnabled reports whether an external advisor is configured.
func (c Config) AdvisorEnabled() bool { return c.AdvisorAPIKey != "" }

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// AdvisorBackoff returns backoff settings appropriate for the current
// environment. Tests use much shorter intervals.
func (c Config) AdvisorBackoff() (maxElapsedTime, initialInterval, maxInterval time.Duration, multiplier float64) {
	if c.IsTest() {
		return 2 * time.Second, 50 * time.Millisecond, 500 * time.Millisecond, 2.0
	}
	return c.AdvisorBackoffMaxElapsedTime, c.AdvisorBackoffInitialInterval, c.AdvisorBackoffMaxInterval, c.AdvisorBackoffMultiplier
}
