// Package invoiceguard forces every checkout order to be invoiced.
//
// The guard decorates the host's order, order store and screens: the
// invoicing flag always reads true, writes of any value store true, the
// host's toggle does nothing, and the invoice button is hidden from the
// screens it would appear on.
package invoiceguard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// PolicyValue is the only value the invoicing flag may hold.
const PolicyValue = true

// Option configures a Guard.
type Option func(*Guard)

// WithCoercionCounter counts writes of false that were forced to true.
func WithCoercionCounter(c metric.Int64Counter) Option {
	return func(g *Guard) { g.coercions = c }
}

// Guard holds the invoicing policy. It has no failure path.
type Guard struct {
	hidden    map[string]struct{}
	logger    *slog.Logger
	coercions metric.Int64Counter
}

// New creates a Guard that hides the named actions. With no names it hides
// checkout.InvoiceButton.
func New(hiddenActions []string, logger *slog.Logger, opts ...Option) *Guard {
	if len(hiddenActions) == 0 {
		hiddenActions = []string{checkout.InvoiceButton}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Guard{
		hidden: make(map[string]struct{}, len(hiddenActions)),
		logger: logger,
	}
	for _, name := range hiddenActions {
		g.hidden[name] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OnConstruct sets a freshly built order's flag to the policy value and
// returns the guarded order.
func (g *Guard) OnConstruct(o ports.Order) ports.Order {
	inner := unwrap(o)
	inner.SetMustInvoice(PolicyValue)
	return g.Wrap(inner)
}

// Wrap returns the guarded view of o without writing to it. Wrapping an
// already guarded order returns it unchanged.
func (g *Guard) Wrap(o ports.Order) ports.Order {
	if guarded, ok := o.(*Order); ok {
		return guarded
	}
	return &Order{inner: o, guard: g}
}

// Read returns the invoicing flag as every caller observes it.
func (g *Guard) Read(ports.Order) bool {
	return PolicyValue
}

// AttemptToggle swallows the host's toggle. The order is not touched.
func (g *Guard) AttemptToggle(ports.Order) {}

// AttemptSet stores the policy value whatever was requested.
func (g *Guard) AttemptSet(ctx context.Context, o ports.Order, requested bool) {
	if requested != PolicyValue {
		g.logger.DebugContext(ctx, "coerced invoicing flag write",
			slog.String("order_id", o.OrderID()),
			slog.Bool("requested", requested),
		)
		if g.coercions != nil {
			g.coercions.Add(ctx, 1)
		}
	}
	unwrap(o).SetMustInvoice(PolicyValue)
}

// OnPaymentScreenEnter re-applies the policy to the current order when the
// payment screen becomes active. No current order is not an error.
func (g *Guard) OnPaymentScreenEnter(ctx context.Context, store ports.OrderStore) {
	o, ok := store.CurrentOrder(ctx)
	if !ok {
		return
	}
	g.AttemptSet(ctx, o, PolicyValue)
}

// VisibleActions drops every hidden action, keeping the rest in order.
func (g *Guard) VisibleActions(actions []checkout.Action) []checkout.Action {
	visible := make([]checkout.Action, 0, len(actions))
	for _, a := range actions {
		if _, hide := g.hidden[a.Name]; hide {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}

func unwrap(o ports.Order) ports.Order {
	if guarded, ok := o.(*Order); ok {
		return guarded.inner
	}
	return o
}
