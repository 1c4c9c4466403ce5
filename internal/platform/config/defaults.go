package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxOpenConns = 10
	defaultPostgresMaxIdleConns = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key that env vars may override must appear here so the env lookup can
// resolve it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "35s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"remote.base_url":                        "https://us1.api.mailchimp.com/3.0",
		"remote.api_key":                         "",
		"remote.timeout":                         "10s",
		"remote.retry.max_attempts":              defaultRetryMaxAttempts,
		"remote.retry.initial_interval":          "100ms",
		"remote.retry.max_interval":              "2s",
		"remote.retry.multiplier":                defaultRetryMultiplier,
		"remote.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"remote.circuit_breaker.timeout":         "30s",
		"remote.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"remote.rate_limit.requests_per_second":  0,
		"remote.rate_limit.burst":                0,

		"store.driver":                     DriverBolt,
		"store.bolt.path":                  "listsync.db",
		"store.bolt.timeout":               "1s",
		"store.postgres.dsn":               "",
		"store.postgres.max_open_conns":    defaultPostgresMaxOpenConns,
		"store.postgres.max_idle_conns":    defaultPostgresMaxIdleConns,
		"store.postgres.conn_max_lifetime": "30m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "listsync",
	}
}
