package host

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.ScreenCatalog = (*ScreenCatalog)(nil)

// ScreenCatalog is the static set of checkout screens declared in config.
// It is read-only after construction.
type ScreenCatalog struct {
	screens map[string]screen
}

// NewScreenCatalog builds the catalog. A later declaration of the same
// screen name replaces an earlier one.
func NewScreenCatalog(cfgs []config.ScreenConfig) *ScreenCatalog {
	c := &ScreenCatalog{screens: make(map[string]screen, len(cfgs))}
	for _, sc := range cfgs {
		actions := make([]checkout.Action, 0, len(sc.Actions))
		for _, a := range sc.Actions {
			actions = append(actions, checkout.Action{Name: a.Name, Label: a.Label})
		}
		c.screens[sc.Name] = screen{name: sc.Name, actions: actions}
	}
	return c
}

// Screen returns the named screen.
func (c *ScreenCatalog) Screen(name string) (ports.Screen, error) {
	s, ok := c.screens[name]
	if !ok {
		return nil, fmt.Errorf("screen %q: %w", name, domain.ErrNotFound)
	}
	return s, nil
}

type screen struct {
	name    string
	actions []checkout.Action
}

func (s screen) Name() string { return s.name }

// Actions returns a copy so callers can filter it freely.
func (s screen) Actions() []checkout.Action { return slices.Clone(s.actions) }
