package ports

import (
	"context"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

// Order is the mutation and read surface of a host checkout order.
type Order interface {
	OrderID() string
	MustInvoice() bool
	SetMustInvoice(v bool)
	ToggleMustInvoice()
	View() checkout.OrderView
}

// OrderStore gives access to the host's orders.
type OrderStore interface {
	// NewOrder creates an order for the partner and makes it current.
	NewOrder(ctx context.Context, partnerID int64, note string) (Order, error)

	// CurrentOrder returns the active order, if any.
	CurrentOrder(ctx context.Context) (Order, bool)

	// Order returns the order with the given ID.
	// Returns domain.ErrNotFound if the order does not exist.
	Order(ctx context.Context, id string) (Order, error)
}

// Screen is a checkout screen with its action buttons.
type Screen interface {
	Name() string
	Actions() []checkout.Action
}

// ScreenCatalog resolves screens by name.
type ScreenCatalog interface {
	// Screen returns the named screen.
	// Returns domain.ErrNotFound for unknown names.
	Screen(name string) (Screen, error)
}

// Notifier presents messages to the user. Calls are fire-and-forget.
type Notifier interface {
	ShowError(title, body string)
	ShowLoading(message string)
	Dismiss()
}

// Renderer asks the view to re-render after state it shows has changed.
type Renderer interface {
	RequestRender()
}

// BusyIndicator gates the blocking UI affordance shown during async calls.
type BusyIndicator interface {
	Block()
	Unblock()
}

// DraftStore keeps the contact drafts of open editing sessions.
type DraftStore interface {
	// Begin opens (or replaces) the editing session for the draft's partner.
	Begin(ctx context.Context, draft partner.ContactDraft) error

	// Get returns a copy of the draft for partnerID.
	// Returns domain.ErrNotFound if no session is open.
	Get(ctx context.Context, partnerID int64) (partner.ContactDraft, error)

	// Save overwrites the draft of an open session.
	// Returns domain.ErrNotFound if no session is open.
	Save(ctx context.Context, draft partner.ContactDraft) error

	// Discard closes the editing session.
	// Returns domain.ErrNotFound if no session is open.
	Discard(ctx context.Context, partnerID int64) error
}
