// Package config loads listsync settings from layered YAML files and APP_*
// environment variables. Field rules are declared with validate tags; rules
// spanning several fields live in validate.go.
package config

import "time"

// Store drivers.
const (
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

// Config is the root of the configuration tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Remote    RemoteConfig    `koanf:"remote"`
	Store     StoreConfig     `koanf:"store"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the inbound API. RequestTimeout bounds a handler;
// WriteTimeout must leave room to send the 504 after it.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"            validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `koanf:"read_timeout"    validate:"gt=0"`
	WriteTimeout   time.Duration `koanf:"write_timeout"   validate:"gt=0"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// RemoteConfig configures the marketing API client.
type RemoteConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"  validate:"gt=0"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is the exponential backoff for idempotent calls. One attempt
// means no retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts" validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"   validate:"gt=0"`
}

// CircuitBreakerConfig trips the breaker after MaxFailures consecutive
// failures and probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig limits outbound calls. A zero RequestsPerSecond disables
// limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst"               validate:"gte=0"`
}

// StoreConfig selects the local store. Only the chosen driver's section is
// checked.
type StoreConfig struct {
	Driver   string         `koanf:"driver"   validate:"oneof=bolt postgres"`
	Bolt     BoltConfig     `koanf:"bolt"`
	Postgres PostgresConfig `koanf:"postgres"`
}

type BoltConfig struct {
	Path    string        `koanf:"path"`
	Timeout time.Duration `koanf:"timeout"`
}

// PostgresConfig configures the gorm connection pool.
type PostgresConfig struct {
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// TelemetryConfig is checked only when Enabled is set.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
