package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Timeout defaults
	assert.Equal(t, "10s", cfg.Timeouts.GlobalSearch.String(), "default global search timeout")
	assert.Equal(t, "3s", cfg.Timeouts.PerDate.String(), "default per-date timeout")
	assert.Equal(t, "15s", cfg.Timeouts.Pricing.String(), "default pricing timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")

	// Amadeus defaults
	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL, "default base URL")
	assert.Equal(t, "USD", cfg.Amadeus.CurrencyCode, "default currency")
	assert.Equal(t, "static", cfg.Amadeus.CredentialsSource, "default credentials source")
	assert.Equal(t, "autorescue/amadeus/credentials", cfg.Amadeus.SecretName, "default secret name")
	assert.Equal(t, "1h0m0s", cfg.Amadeus.SecretTTL.String(), "default secret TTL")
	assert.Equal(t, 10.0, cfg.Amadeus.RateLimitRPS, "default rate limit")
	assert.Equal(t, 20, cfg.Amadeus.RateLimitBurst, "default rate limit burst")

	// Redis defaults
	assert.False(t, cfg.Redis.Enabled, "cache disabled by default")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr, "default redis addr")
	assert.Equal(t, "5m0s", cfg.Redis.TTL.String(), "default cache TTL")

	// Disruption defaults
	assert.Equal(t, []int{-2}, cfg.Disruption.AlternateOffsets, "default alternate offsets")
	assert.Equal(t, 3, cfg.Disruption.MaxOffersPerDate, "default max offers per date")

	// Booking defaults
	assert.Equal(t, "static", cfg.Booking.PassengerSource, "default passenger source")
	assert.Equal(t, "autorescue-personal-info", cfg.Booking.PersonalInfoBucket, "default profile bucket")
	assert.Equal(t, "personal_info.json", cfg.Booking.PersonalInfoKey, "default profile key")
	assert.Equal(t, "1h0m0s", cfg.Booking.PersonalInfoTTL.String(), "default profile TTL")
	assert.Equal(t, "10s", cfg.Booking.Timeout.String(), "default booking timeout")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	resetEnv(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":                    "3000",
		"SERVER_READ_TIMEOUT":            "30s",
		"SERVER_WRITE_TIMEOUT":           "60s",
		"TIMEOUT_GLOBAL_SEARCH":          "20s",
		"TIMEOUT_PER_DATE":               "5s",
		"LOG_LEVEL":                      "debug",
		"LOG_FORMAT":                     "console",
		"APP_ENV":                        "production",
		"AMADEUS_BASE_URL":               "https://api.amadeus.com",
		"AMADEUS_CURRENCY_CODE":          "EUR",
		"REDIS_ENABLED":                  "true",
		"REDIS_ADDR":                     "cache:6379",
		"REDIS_CACHE_TTL":                "10m",
		"DISRUPTION_ALTERNATE_OFFSETS":   "-2,2,3",
		"DISRUPTION_MAX_OFFERS_PER_DATE": "5",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "60s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "20s", cfg.Timeouts.GlobalSearch.String())
	assert.Equal(t, "5s", cfg.Timeouts.PerDate.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "EUR", cfg.Amadeus.CurrencyCode)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "10m0s", cfg.Redis.TTL.String())
	assert.Equal(t, []int{-2, 2, 3}, cfg.Disruption.AlternateOffsets)
	assert.Equal(t, 5, cfg.Disruption.MaxOffersPerDate)
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero global search timeout", "TIMEOUT_GLOBAL_SEARCH", "0s", "TIMEOUT_GLOBAL_SEARCH must be positive"},
		{"zero per-date timeout", "TIMEOUT_PER_DATE", "0s", "TIMEOUT_PER_DATE must be positive"},
		{"negative pricing timeout", "TIMEOUT_PRICING", "-1s", "TIMEOUT_PRICING must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_PerDateLessThanGlobal tests that the per-date timeout must be less than global.
func TestLoad_Validation_PerDateLessThanGlobal(t *testing.T) {
	resetEnv(t)

	setEnvVars(t, map[string]string{
		"TIMEOUT_GLOBAL_SEARCH": "5s",
		"TIMEOUT_PER_DATE":      "5s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEOUT_PER_DATE")
	assert.Contains(t, err.Error(), "should be less than")
	assert.Nil(t, cfg)

	setEnvVars(t, map[string]string{
		"TIMEOUT_GLOBAL_SEARCH": "5s",
		"TIMEOUT_PER_DATE":      "10s",
	})

	cfg, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEOUT_PER_DATE")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_CredentialsSource tests credential source validation.
func TestLoad_Validation_CredentialsSource(t *testing.T) {
	t.Run("static source requires client id and secret", func(t *testing.T) {
		resetEnv(t)
		os.Unsetenv("AMADEUS_CLIENT_ID")
		os.Unsetenv("AMADEUS_CLIENT_SECRET")

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required")
		assert.Nil(t, cfg)
	})

	t.Run("secretsmanager source does not require static credentials", func(t *testing.T) {
		resetEnv(t)
		os.Unsetenv("AMADEUS_CLIENT_ID")
		os.Unsetenv("AMADEUS_CLIENT_SECRET")
		setEnvVars(t, map[string]string{
			"AMADEUS_CREDENTIALS_SOURCE": "secretsmanager",
		})

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "secretsmanager", cfg.Amadeus.CredentialsSource)
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		resetEnv(t)
		setEnvVars(t, map[string]string{
			"AMADEUS_CREDENTIALS_SOURCE": "vault",
		})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AMADEUS_CREDENTIALS_SOURCE must be one of")
		assert.Nil(t, cfg)
	})
}

// TestLoad_Validation_PassengerSource tests the passenger source rules.
func TestLoad_Validation_PassengerSource(t *testing.T) {
	t.Run("s3 source requires bucket and key", func(t *testing.T) {
		resetEnv(t)
		setEnvVars(t, map[string]string{
			"PASSENGER_INFO_SOURCE": "s3",
			"PERSONAL_INFO_BUCKET":  "",
		})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PERSONAL_INFO_BUCKET and PERSONAL_INFO_KEY are required")
		assert.Nil(t, cfg)
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		resetEnv(t)
		setEnvVars(t, map[string]string{
			"PASSENGER_INFO_SOURCE": "dynamodb",
		})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PASSENGER_INFO_SOURCE must be one of")
		assert.Nil(t, cfg)
	})
}

// TestLoad_Validation_AlternateOffsets tests the alternate offset rules.
func TestLoad_Validation_AlternateOffsets(t *testing.T) {
	tests := []struct {
		name    string
		offsets string
		wantErr bool
	}{
		{"earlier offset", "-2", false},
		{"multiple offsets", "-3,-2,2", false},
		{"zero is always searched", "0", true},
		{"next day is always searched", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			setEnvVars(t, map[string]string{"DISRUPTION_ALTERNATE_OFFSETS": tt.offsets})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "DISRUPTION_ALTERNATE_OFFSETS")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Redis tests cache settings validation.
func TestLoad_Validation_Redis(t *testing.T) {
	resetEnv(t)
	setEnvVars(t, map[string]string{
		"REDIS_ENABLED":   "true",
		"REDIS_CACHE_TTL": "0s",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_CACHE_TTL must be positive")
	assert.Nil(t, cfg)
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	resetEnv(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	resetEnv(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			resetEnv(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// Helper functions

// resetEnv clears all config-related environment variables and seeds the
// static Amadeus credentials that validation requires by default.
func resetEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"TIMEOUT_GLOBAL_SEARCH",
		"TIMEOUT_PER_DATE",
		"TIMEOUT_PRICING",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
		"AMADEUS_BASE_URL",
		"AMADEUS_CURRENCY_CODE",
		"AMADEUS_CREDENTIALS_SOURCE",
		"AMADEUS_CLIENT_ID",
		"AMADEUS_CLIENT_SECRET",
		"AMADEUS_SECRET_NAME",
		"AMADEUS_SECRET_TTL",
		"AMADEUS_RATE_LIMIT_RPS",
		"AMADEUS_RATE_LIMIT_BURST",
		"AWS_REGION",
		"REDIS_ENABLED",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"REDIS_CACHE_TTL",
		"DISRUPTION_ALTERNATE_OFFSETS",
		"DISRUPTION_MAX_OFFERS_PER_DATE",
		"PASSENGER_INFO_SOURCE",
		"PASSENGER_FIRST_NAME",
		"PASSENGER_LAST_NAME",
		"PASSENGER_EMAIL",
		"PASSENGER_PHONE",
		"PERSONAL_INFO_BUCKET",
		"PERSONAL_INFO_KEY",
		"PERSONAL_INFO_TTL",
		"TIMEOUT_BOOKING",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	// Static credentials are mandatory under the default source.
	setEnvVars(t, map[string]string{
		"AMADEUS_CLIENT_ID":     "test-client-id",
		"AMADEUS_CLIENT_SECRET": "test-client-secret",
	})
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
