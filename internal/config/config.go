// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Timeouts   TimeoutConfig
	Logging    LoggingConfig
	App        AppConfig
	Amadeus    AmadeusConfig
	Redis      RedisConfig
	Disruption DisruptionConfig
	Booking    BookingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"10s"`
	PerDate      time.Duration `env:"TIMEOUT_PER_DATE" envDefault:"3s"`
	Pricing      time.Duration `env:"TIMEOUT_PRICING" envDefault:"15s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// AmadeusConfig holds settings for the Amadeus flight provider.
type AmadeusConfig struct {
	BaseURL      string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	CurrencyCode string `env:"AMADEUS_CURRENCY_CODE" envDefault:"USD"`

	// CredentialsSource selects where API credentials come from:
	// "static" reads them from the environment, "secretsmanager" fetches
	// them from AWS Secrets Manager.
	CredentialsSource string `env:"AMADEUS_CREDENTIALS_SOURCE" envDefault:"static"`

	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`

	SecretName string        `env:"AMADEUS_SECRET_NAME" envDefault:"autorescue/amadeus/credentials"`
	AWSRegion  string        `env:"AWS_REGION" envDefault:"us-east-1"`
	SecretTTL  time.Duration `env:"AMADEUS_SECRET_TTL" envDefault:"1h"`

	RateLimitRPS   float64 `env:"AMADEUS_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"AMADEUS_RATE_LIMIT_BURST" envDefault:"20"`
}

// RedisConfig holds settings for the search result cache.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`
}

// DisruptionConfig holds settings for the disruption analysis window.
type DisruptionConfig struct {
	// AlternateOffsets are day offsets relative to the original date that
	// are searched in addition to the same-day and next-day candidates.
	// Negative values look earlier, positive later.
	AlternateOffsets []int `env:"DISRUPTION_ALTERNATE_OFFSETS" envDefault:"-2" envSeparator:","`

	MaxOffersPerDate int `env:"DISRUPTION_MAX_OFFERS_PER_DATE" envDefault:"3"`
}

// BookingConfig holds settings for booking confirmations and the
// passenger profile store.
type BookingConfig struct {
	// PassengerSource selects where the traveler profile comes from:
	// "static" uses the PASSENGER_* environment variables, "s3" reads a
	// profile document from S3.
	PassengerSource string `env:"PASSENGER_INFO_SOURCE" envDefault:"static"`

	PassengerFirstName string `env:"PASSENGER_FIRST_NAME" envDefault:"John"`
	PassengerLastName  string `env:"PASSENGER_LAST_NAME" envDefault:"Doe"`
	PassengerEmail     string `env:"PASSENGER_EMAIL" envDefault:"passenger@example.com"`
	PassengerPhone     string `env:"PASSENGER_PHONE" envDefault:"+1-555-0100"`

	PersonalInfoBucket string        `env:"PERSONAL_INFO_BUCKET" envDefault:"autorescue-personal-info"`
	PersonalInfoKey    string        `env:"PERSONAL_INFO_KEY" envDefault:"personal_info.json"`
	PersonalInfoTTL    time.Duration `env:"PERSONAL_INFO_TTL" envDefault:"1h"`

	Timeout time.Duration `env:"TIMEOUT_BOOKING" envDefault:"10s"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerDate <= 0 {
		return fmt.Errorf("TIMEOUT_PER_DATE must be positive")
	}
	if cfg.Timeouts.Pricing <= 0 {
		return fmt.Errorf("TIMEOUT_PRICING must be positive")
	}

	// Validate per-date timeout is less than global timeout
	if cfg.Timeouts.PerDate >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_DATE (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerDate, cfg.Timeouts.GlobalSearch)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	switch cfg.Amadeus.CredentialsSource {
	case "static":
		if cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "" {
			return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required when AMADEUS_CREDENTIALS_SOURCE is static")
		}
	case "secretsmanager":
		if cfg.Amadeus.SecretName == "" {
			return fmt.Errorf("AMADEUS_SECRET_NAME is required when AMADEUS_CREDENTIALS_SOURCE is secretsmanager")
		}
	default:
		return fmt.Errorf("AMADEUS_CREDENTIALS_SOURCE must be one of: static, secretsmanager; got %q", cfg.Amadeus.CredentialsSource)
	}

	if !strings.HasPrefix(cfg.Amadeus.BaseURL, "http://") && !strings.HasPrefix(cfg.Amadeus.BaseURL, "https://") {
		return fmt.Errorf("AMADEUS_BASE_URL must be an http(s) URL, got %q", cfg.Amadeus.BaseURL)
	}
	if cfg.Amadeus.RateLimitRPS <= 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT_RPS must be positive")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED is true")
		}
		if cfg.Redis.TTL <= 0 {
			return fmt.Errorf("REDIS_CACHE_TTL must be positive")
		}
	}

	if cfg.Disruption.MaxOffersPerDate < 1 {
		return fmt.Errorf("DISRUPTION_MAX_OFFERS_PER_DATE must be at least 1")
	}
	for _, offset := range cfg.Disruption.AlternateOffsets {
		if offset == 0 || offset == 1 {
			return fmt.Errorf("DISRUPTION_ALTERNATE_OFFSETS must not include 0 or 1; those dates are always searched")
		}
	}

	switch cfg.Booking.PassengerSource {
	case "static":
	case "s3":
		if cfg.Booking.PersonalInfoBucket == "" || cfg.Booking.PersonalInfoKey == "" {
			return fmt.Errorf("PERSONAL_INFO_BUCKET and PERSONAL_INFO_KEY are required when PASSENGER_INFO_SOURCE is s3")
		}
	default:
		return fmt.Errorf("PASSENGER_INFO_SOURCE must be one of: static, s3; got %q", cfg.Booking.PassengerSource)
	}
	if cfg.Booking.Timeout <= 0 {
		return fmt.Errorf("TIMEOUT_BOOKING must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
