package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"
)

// problems collects every invalid setting so a bad deployment reports them
// all at once.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %s, got %q", key, strings.Join(allowed, "|"), got)
}

func (p problems) err() error {
	return errors.Join(p...)
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Digifact.validate(&p)
	c.TokenCache.validate(&p)
	validateScreens(&p, c.Screens)
	c.Invoice.validate(&p, c.Screens)
	return p.err()
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port > 0 && s.Port <= 65535, "server.port %d is outside 1-65535", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
	p.check(s.ShutdownTimeout > 0, "server.shutdown_timeout must be positive, got %s", s.ShutdownTimeout)
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url is required")
	p.check(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)

	r := cl.Retry
	p.check(r.MaxAttempts >= 1, "client.retry.max_attempts must be at least 1, got %d", r.MaxAttempts)
	p.check(r.Multiplier > 0, "client.retry.multiplier must be positive, got %g", r.Multiplier)

	cb := cl.CircuitBreaker
	p.check(cb.MaxFailures >= 1, "client.circuit_breaker.max_failures must be at least 1, got %d", cb.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0, "client.rate_limit.requests_per_second is negative: %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be at least 1 while limiting, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
}

func (d *DigifactConfig) validate(p *problems) {
	p.check(strings.HasPrefix(d.TokenPath, "/"), "digifact.token_path must be absolute, got %q", d.TokenPath)
	p.check(strings.HasPrefix(d.NITPath, "/"), "digifact.nit_path must be absolute, got %q", d.NITPath)
	p.check(d.TokenSkew >= 0, "digifact.token_skew is negative: %s", d.TokenSkew)
	_, err := time.LoadLocation(d.ExpiryLocation)
	p.check(err == nil, "digifact.expiry_location %q is not a known time zone", d.ExpiryLocation)

	// Sorted so the message order is stable.
	for _, id := range slices.Sorted(maps.Keys(d.Credentials)) {
		cred := d.Credentials[id]
		p.check(cred.TaxID != "" && cred.User != "" && cred.Password != "",
			"digifact.credentials.%s needs tax_id, user and password", id)
	}
}

func (tc *TokenCacheConfig) validate(p *problems) {
	p.oneOf("token_cache.backend", tc.Backend, "memory", "redis")
	p.check(tc.Backend != "redis" || tc.RedisURL != "", "token_cache.redis_url is required for the redis backend")
}

func validateScreens(p *problems, screens []ScreenConfig) {
	seen := make(map[string]bool, len(screens))
	for i, s := range screens {
		if s.Name == "" {
			p.check(false, "screens[%d].name is required", i)
			continue
		}
		p.check(!seen[s.Name], "screens[%d].name %q is declared twice", i, s.Name)
		seen[s.Name] = true

		for j, a := range s.Actions {
			p.check(a.Name != "", "screens[%d].actions[%d].name is required", i, j)
		}
	}
}

// validate requires every hidden action to be declared on some screen once
// screens are configured.
func (in *InvoiceConfig) validate(p *problems, screens []ScreenConfig) {
	if len(screens) == 0 {
		return
	}

	declared := make(map[string]bool)
	for _, s := range screens {
		for _, a := range s.Actions {
			declared[a.Name] = true
		}
	}
	for i, name := range in.HiddenActions {
		p.check(declared[name], "invoice.hidden_actions[%d] %q is not declared on any screen", i, name)
	}
}
