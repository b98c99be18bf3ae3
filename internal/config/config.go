// Package config defines the global configuration structure for the Skycast
// service. Configuration is loaded once at process initialization and is
// immutable thereafter. It follows 12-Factor App principles by strictly
// separating code from configuration.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct Defaults (Lowest)
//
// Any invalid value causes the application to fail immediately on startup.
package config

import "time"

// Config is the top-level configuration struct for the Skycast service.
// It is populated once during process initialization and never modified.
// Sub-components receive only the specific config subsets they require.
type Config struct {
	// System Metadata
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"skycast"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Domain Configurations
	Server        ServerConfig
	Upstream      UpstreamConfig
	Security      SecurityConfig
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`

	// RequestTimeout bounds the total time a single request may spend in
	// the handler chain, including upstream calls.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`

	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// UpstreamConfig holds the Open-Meteo endpoint configuration. The URL
// defaults are the production endpoints; overriding them is intended for
// tests and local stubs, not for routine deployment.
type UpstreamConfig struct {
	GeocodingURL string `envconfig:"GEOCODING_URL" default:"https://geocoding-api.open-meteo.com/v1/search" validate:"required,url"`
	ForecastURL  string `envconfig:"FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`

	// Language is the fixed locale sent to the geocoding endpoint.
	Language string `envconfig:"GEOCODING_LANGUAGE" default:"en"`

	Timeout   time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"UPSTREAM_USER_AGENT" default:"Skycast/1.0"`

	// Client-side rate limiting toward the free Open-Meteo tier.
	RateLimit float64 `envconfig:"UPSTREAM_RATE_LIMIT" default:"5"`
	RateBurst int     `envconfig:"UPSTREAM_RATE_BURST" default:"5"`
}

// SecurityConfig holds CORS settings for browser clients.
type SecurityConfig struct {
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// ObservabilityConfig holds telemetry settings.
type ObservabilityConfig struct {
	MetricNamespace string `envconfig:"METRIC_NAMESPACE" default:"skycast"`
}

// ConfigErrorType categorizes configuration loading failures to aid debugging.
type ConfigErrorType string

const (
	// ErrValidation indicates the configuration failed struct validation rules.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates a failure when parsing environment variable values
	// into their target types.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
