package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

var testTime = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestNewOrder_HostDefaultIsNotInvoiced(t *testing.T) {
	t.Parallel()

	o := NewOrder("o-1", "Order 0001", 7, "", testTime)
	if o.MustInvoice() {
		t.Error("MustInvoice() = true, want false for a fresh host order")
	}
}

func TestOrder_FlagSeams(t *testing.T) {
	t.Parallel()

	o := NewOrder("o-1", "Order 0001", 7, "", testTime)

	o.SetMustInvoice(true)
	if !o.MustInvoice() {
		t.Fatal("MustInvoice() = false after SetMustInvoice(true)")
	}

	o.ToggleMustInvoice()
	if o.MustInvoice() {
		t.Fatal("MustInvoice() = true after toggle")
	}

	if got := o.View(); got.MustInvoice || got.ID != "o-1" || got.PartnerID != 7 {
		t.Errorf("View() = %+v, want ID o-1, partner 7, not invoiced", got)
	}
}

func TestOrder_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		order     *Order
		wantField string
	}{
		{name: "valid", order: NewOrder("o-1", "Order 0001", 0, "", testTime)},
		{name: "missing id", order: NewOrder(" ", "Order 0001", 0, "", testTime), wantField: "id"},
		{name: "missing name", order: NewOrder("o-1", "", 0, "", testTime), wantField: "name"},
		{name: "negative partner", order: NewOrder("o-1", "Order 0001", -1, "", testTime), wantField: "partner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.order.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}
