// Package checkout holds the point-of-sale host entities the invoicing
// extension decorates: orders and the action buttons shown on checkout screens.
package checkout

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

// Order is one checkout transaction as the host models it. The invoicing flag
// is unexported so every read and write goes through the methods below, which
// are the seams the invoice flag guard decorates.
type Order struct {
	ID        string
	Name      string
	PartnerID int64
	Note      string
	CreatedAt time.Time

	toInvoice bool
}

// OrderView is a read-only snapshot of an order, suitable for serialization.
type OrderView struct {
	ID          string
	Name        string
	PartnerID   int64
	Note        string
	MustInvoice bool
	CreatedAt   time.Time
}

// NewOrder builds an order with the host default of not being invoiced.
func NewOrder(id, name string, partnerID int64, note string, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		Name:      name,
		PartnerID: partnerID,
		Note:      note,
		CreatedAt: createdAt,
	}
}

// Validate checks business rules for the Order entity.
func (o *Order) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(o.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if o.PartnerID < 0 {
		fields["partner_id"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// OrderID returns the order identifier.
func (o *Order) OrderID() string {
	return o.ID
}

// MustInvoice reports the stored invoicing flag.
func (o *Order) MustInvoice() bool {
	return o.toInvoice
}

// SetMustInvoice stores the invoicing flag.
func (o *Order) SetMustInvoice(v bool) {
	o.toInvoice = v
}

// ToggleMustInvoice flips the invoicing flag. This is the action bound to the
// host's invoice button.
func (o *Order) ToggleMustInvoice() {
	o.toInvoice = !o.toInvoice
}

// View returns a snapshot of the order.
func (o *Order) View() OrderView {
	return OrderView{
		ID:          o.ID,
		Name:        o.Name,
		PartnerID:   o.PartnerID,
		Note:        o.Note,
		MustInvoice: o.toInvoice,
		CreatedAt:   o.CreatedAt,
	}
}
