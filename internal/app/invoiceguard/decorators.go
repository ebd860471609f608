package invoiceguard

import (
	"context"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var (
	_ ports.Order         = (*Order)(nil)
	_ ports.OrderStore    = (*Store)(nil)
	_ ports.Screen        = (*Screen)(nil)
	_ ports.ScreenCatalog = (*Catalog)(nil)
)

// Order is a guarded ports.Order.
type Order struct {
	inner ports.Order
	guard *Guard
}

// OrderID returns the underlying order's ID.
func (o *Order) OrderID() string { return o.inner.OrderID() }

// MustInvoice always reports the policy value.
func (o *Order) MustInvoice() bool { return o.guard.Read(o.inner) }

// SetMustInvoice stores the policy value.
func (o *Order) SetMustInvoice(v bool) {
	o.guard.AttemptSet(context.Background(), o.inner, v)
}

// ToggleMustInvoice does nothing.
func (o *Order) ToggleMustInvoice() { o.guard.AttemptToggle(o.inner) }

// View returns the underlying snapshot with the flag as the guard reads it.
func (o *Order) View() checkout.OrderView {
	v := o.inner.View()
	v.MustInvoice = o.guard.Read(o.inner)
	return v
}

// Store is a ports.OrderStore that only hands out guarded orders.
type Store struct {
	inner ports.OrderStore
	guard *Guard
}

// NewStore decorates store with g.
func NewStore(store ports.OrderStore, g *Guard) *Store {
	return &Store{inner: store, guard: g}
}

// NewOrder creates the order through the host store and applies
// OnConstruct to it.
func (s *Store) NewOrder(ctx context.Context, partnerID int64, note string) (ports.Order, error) {
	o, err := s.inner.NewOrder(ctx, partnerID, note)
	if err != nil {
		return nil, err
	}
	return s.guard.OnConstruct(o), nil
}

// CurrentOrder returns the guarded current order.
func (s *Store) CurrentOrder(ctx context.Context) (ports.Order, bool) {
	o, ok := s.inner.CurrentOrder(ctx)
	if !ok {
		return nil, false
	}
	return s.guard.Wrap(o), true
}

// Order returns the guarded order with the given ID.
func (s *Store) Order(ctx context.Context, id string) (ports.Order, error) {
	o, err := s.inner.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.guard.Wrap(o), nil
}

// Screen is a ports.Screen whose actions are filtered by the guard.
type Screen struct {
	inner ports.Screen
	guard *Guard
}

// Name returns the underlying screen name.
func (s *Screen) Name() string { return s.inner.Name() }

// Actions returns the visible actions.
func (s *Screen) Actions() []checkout.Action {
	return s.guard.VisibleActions(s.inner.Actions())
}

// Catalog is a ports.ScreenCatalog that returns guarded screens.
type Catalog struct {
	inner ports.ScreenCatalog
	guard *Guard
}

// NewCatalog decorates catalog with g.
func NewCatalog(catalog ports.ScreenCatalog, g *Guard) *Catalog {
	return &Catalog{inner: catalog, guard: g}
}

// Screen returns the guarded screen.
func (c *Catalog) Screen(name string) (ports.Screen, error) {
	s, err := c.inner.Screen(name)
	if err != nil {
		return nil, err
	}
	return &Screen{inner: s, guard: c.guard}, nil
}
