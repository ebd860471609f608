// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Digifact   DigifactConfig   `koanf:"digifact"`
	TokenCache TokenCacheConfig `koanf:"token_cache"`
	Invoice    InvoiceConfig    `koanf:"invoice"`
	Screens    []ScreenConfig   `koanf:"screens"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds how long in-flight requests, registry calls
	// included, may run once shutdown starts.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client used to reach the tax ID
// registry.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DigifactConfig holds the registry endpoints and the per-company
// credentials. Credentials are keyed by verification context ID (the
// company ID as a decimal string).
type DigifactConfig struct {
	TokenPath   string                        `koanf:"token_path"`
	NITPath     string                        `koanf:"nit_path"`
	TokenSkew   time.Duration                 `koanf:"token_skew"`
	Credentials map[string]DigifactCredential `koanf:"credentials"`

	// ExpiryLocation is the IANA zone the registry's token expiry
	// timestamps, which carry no offset, are read in.
	ExpiryLocation string `koanf:"expiry_location"`
}

// DigifactCredential identifies one company towards the registry.
type DigifactCredential struct {
	TaxID    string `koanf:"tax_id"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
}

// TokenCacheConfig selects where registry tokens are cached.
type TokenCacheConfig struct {
	Backend   string `koanf:"backend"`
	RedisURL  string `koanf:"redis_url"`
	KeyPrefix string `koanf:"key_prefix"`
}

// InvoiceConfig holds the invoicing policy settings.
type InvoiceConfig struct {
	HiddenActions []string `koanf:"hidden_actions"`
}

// ScreenConfig declares a checkout screen and the actions the host shows on it.
type ScreenConfig struct {
	Name    string         `koanf:"name"`
	Actions []ActionConfig `koanf:"actions"`
}

// ActionConfig declares one screen action.
type ActionConfig struct {
	Name  string `koanf:"name"`
	Label string `koanf:"label"`
}
