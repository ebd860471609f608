// Package extension applies host extensions at most once.
package extension

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyInstalled is returned when an extension name is installed twice.
var ErrAlreadyInstalled = errors.New("extension already installed")

// Registry records which extensions were applied.
type Registry struct {
	mu        sync.Mutex
	installed []string
	seen      map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Install runs apply once for name. A second install of the same name
// returns ErrAlreadyInstalled without calling apply. When apply fails the
// name is not recorded, so the install can be retried.
func (r *Registry) Install(name string, apply func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyInstalled, name)
	}
	if err := apply(); err != nil {
		return fmt.Errorf("installing %s: %w", name, err)
	}

	r.seen[name] = struct{}{}
	r.installed = append(r.installed, name)
	return nil
}

// Installed returns the installed extension names in install order.
func (r *Registry) Installed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.installed))
	copy(out, r.installed)
	return out
}
