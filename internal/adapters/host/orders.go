package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore keeps orders in memory and tracks the current one.
type OrderStore struct {
	mu      sync.Mutex
	orders  map[string]*checkout.Order
	current string
	seq     int
	now     func() time.Time
}

// NewOrderStore returns an empty store. now stamps new orders; nil means
// time.Now.
func NewOrderStore(now func() time.Time) *OrderStore {
	if now == nil {
		now = time.Now
	}
	return &OrderStore{
		orders: make(map[string]*checkout.Order),
		now:    now,
	}
}

// NewOrder creates an order with the host default flag and makes it current.
func (s *OrderStore) NewOrder(_ context.Context, partnerID int64, note string) (ports.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	o := checkout.NewOrder(uuid.NewString(), fmt.Sprintf("Order %04d", s.seq), partnerID, note, s.now().UTC())
	if err := o.Validate(); err != nil {
		s.seq--
		return nil, err
	}

	s.orders[o.ID] = o
	s.current = o.ID
	return &lockedOrder{mu: &s.mu, order: o}, nil
}

// CurrentOrder returns the most recently created order.
func (s *OrderStore) CurrentOrder(_ context.Context) (ports.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[s.current]
	if !ok {
		return nil, false
	}
	return &lockedOrder{mu: &s.mu, order: o}, true
}

// Order returns the order with the given ID.
func (s *OrderStore) Order(_ context.Context, id string) (ports.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return &lockedOrder{mu: &s.mu, order: o}, nil
}

// lockedOrder serializes access to a stored order through the store's mutex.
type lockedOrder struct {
	mu    *sync.Mutex
	order *checkout.Order
}

func (l *lockedOrder) OrderID() string {
	return l.order.OrderID()
}

func (l *lockedOrder) MustInvoice() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.order.MustInvoice()
}

func (l *lockedOrder) SetMustInvoice(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order.SetMustInvoice(v)
}

func (l *lockedOrder) ToggleMustInvoice() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order.ToggleMustInvoice()
}

func (l *lockedOrder) View() checkout.OrderView {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.order.View()
}
