// Package health runs the readiness checks of the service's dependencies:
// the tax ID registry client and the token cache.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

const (
	defaultCheckTimeout = 2 * time.Second
	defaultParallelism  = 4
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual health check. Zero disables the
// per-check deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// WithParallelism caps the number of checks run at once.
func WithParallelism(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu          sync.RWMutex
	checkers    []ports.HealthChecker
	timeout     time.Duration
	parallelism int
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: defaultCheckTimeout, parallelism: defaultParallelism}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently and returns the results keyed by
// checker name; nil means healthy. A panicking check is reported as failed.
// When two checkers share a name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var g errgroup.Group
	g.SetLimit(r.parallelism)
	for i, c := range checkers {
		g.Go(func() error {
			checkCtx := ctx
			if r.timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(ctx, r.timeout)
				defer cancel()
			}
			errs[i] = check(checkCtx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func check(ctx context.Context, c ports.HealthChecker) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check panicked: %v", v)
		}
	}()
	return c.HealthCheck(ctx)
}
