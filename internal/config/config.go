package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/osa911/portfolio/internal/config/dotenv"
)

// Config holds all configuration for the API server
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string   `env:"LOG_FILE"`
	LogRequests    bool     `env:"LOG_REQUESTS" envDefault:"false"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Contact form throttling, applied per client address
	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1m"`

	Email   EmailConfig
	Tracing TracingConfig
}

// EmailConfig holds the transactional email settings
type EmailConfig struct {
	SendGridAPIKey  string        `env:"SENDGRID_API_KEY"`
	FromEmail       string        `env:"FROM_EMAIL" envDefault:"noreply@yourdomain.com"`
	ToEmail         string        `env:"TO_EMAIL" envDefault:"your@email.com"`
	SendGridAPIHost string        `env:"SENDGRID_API_HOST" envDefault:"https://api.sendgrid.com"`
	Timeout         time.Duration `env:"SENDGRID_TIMEOUT" envDefault:"10s"`
}

// TracingConfig controls OpenTelemetry request tracing. Tracing is off unless enabled.
type TracingConfig struct {
	Enabled     bool    `env:"OTEL_TRACING_ENABLED" envDefault:"false"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	SampleRatio float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1"`
}

// DemosConfig holds configuration for the demo gallery server
type DemosConfig struct {
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"7860"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string   `env:"LOG_FILE"`
	LogRequests    bool     `env:"LOG_REQUESTS" envDefault:"false"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	Seed           int64    `env:"DEMO_SEED" envDefault:"42"`

	Tracing TracingConfig
}

// IsProduction reports whether the server runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads the API configuration from environment variables and .env files
func Load() (*Config, error) {
	dotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile(cfg.Environment, "api.log")
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// Validate checks values that env parsing alone cannot reject
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ContactRateLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", c.ContactRateLimit)
	}
	if c.ContactRateWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW must be positive, got %s", c.ContactRateWindow)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_RATIO must be within [0,1], got %v", c.Tracing.SampleRatio)
	}
	if c.Email.Timeout <= 0 {
		return fmt.Errorf("SENDGRID_TIMEOUT must be positive, got %s", c.Email.Timeout)
	}
	return nil
}

// Validate checks the demos settings
func (c *DemosConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_RATIO must be within [0,1], got %v", c.Tracing.SampleRatio)
	}
	return nil
}

// LoadDemos loads the demo gallery configuration
func LoadDemos() (*DemosConfig, error) {
	dotenv.Load()

	cfg := &DemosConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demos config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile(cfg.Environment, "demos.log")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

func defaultLogFile(environment, name string) string {
	if environment == "production" {
		return filepath.Join("/app/logs", name)
	}
	return filepath.Join(".", "logs", name)
}
