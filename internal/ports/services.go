package ports

import (
	"context"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

// CheckoutService defines the service port for order invoicing operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every order it hands out is guarded: MustInvoice is always true.
type CheckoutService interface {
	// OpenOrder creates a new order for the partner and makes it current.
	OpenOrder(ctx context.Context, partnerID int64, note string) (checkout.OrderView, error)

	// CurrentOrder returns the active order.
	// Returns domain.ErrNotFound if there is none.
	CurrentOrder(ctx context.Context) (checkout.OrderView, error)

	// GetOrder returns an order by ID.
	// Returns domain.ErrNotFound if the order does not exist.
	GetOrder(ctx context.Context, id string) (checkout.OrderView, error)

	// SetMustInvoice attempts to write the invoicing flag. The stored value
	// is always the policy value.
	SetMustInvoice(ctx context.Context, id string, requested bool) (checkout.OrderView, error)

	// ToggleMustInvoice attempts to flip the invoicing flag. It never changes
	// the order.
	ToggleMustInvoice(ctx context.Context, id string) (checkout.OrderView, error)

	// EnterScreen runs the enforcement hooks bound to a screen becoming
	// active and returns the current order, if any.
	// Returns domain.ErrNotFound for unknown screens.
	EnterScreen(ctx context.Context, screen string) (*checkout.OrderView, error)

	// ScreenActions returns the actions the screen exposes to the user.
	// Returns domain.ErrNotFound for unknown screens.
	ScreenActions(ctx context.Context, screen string) ([]checkout.Action, error)
}

// PartnerService defines the service port for contact editing sessions and
// tax ID verification.
type PartnerService interface {
	// BeginEdit opens an editing session with the given initial draft.
	// Returns domain.ErrValidation if the draft fails validation.
	BeginEdit(ctx context.Context, draft partner.ContactDraft) (partner.ContactDraft, error)

	// GetDraft returns the draft of an open session.
	// Returns domain.ErrNotFound if no session is open.
	GetDraft(ctx context.Context, partnerID int64) (partner.ContactDraft, error)

	// DiscardEdit closes the editing session.
	// Returns domain.ErrNotFound if no session is open.
	DiscardEdit(ctx context.Context, partnerID int64) error

	// VerifyTaxID verifies taxID against the registry and, on success, merges
	// the registry data into the partner's draft. Verification failures are
	// reported in the result, not as errors.
	// Returns domain.ErrNotFound if no session is open.
	VerifyTaxID(ctx context.Context, partnerID int64, taxID string, session *partner.SessionContext) (*VerificationReport, error)
}

// Notification is one message raised while handling a request.
type Notification struct {
	Kind  string
	Title string
	Body  string
}

// VerificationReport is what a verification call left behind: its outcome,
// the resulting draft and the UI effects it requested.
type VerificationReport struct {
	Outcome         partner.Outcome
	Draft           partner.ContactDraft
	Notifications   []Notification
	RenderRequested bool
	Busy            bool
}
