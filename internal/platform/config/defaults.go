package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://felgtaws.digifact.com.gt",
		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "checkout-fel",

		"digifact.token_path":      "/gt.com.fel.api.v3/api/login/get_token",
		"digifact.nit_path":        "/gt.com.fel.api.v3/api/SHAREDINFO",
		"digifact.token_skew":      "30s",
		"digifact.expiry_location": "UTC",

		"token_cache.backend":    "memory",
		"token_cache.redis_url":  "",
		"token_cache.key_prefix": "checkout-fel:token:",

		"invoice.hidden_actions": []string{"InvoiceButton"},
	}
}
