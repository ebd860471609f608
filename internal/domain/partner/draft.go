// Package partner contains the customer-side types touched by tax ID
// verification: the in-progress contact draft, the registry check result and
// the outcome taxonomy reported to the user.
package partner

import (
	"strings"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

// ContactDraft is the not-yet-committed set of edits to a customer record. It
// exists while an editing session is open and is discarded when it closes.
type ContactDraft struct {
	PartnerID int64
	CompanyID int64
	Name      string
	VAT       string
	Street    string
	City      string
	CountryID string
	Email     string
	Phone     string
}

// Validate checks business rules for the ContactDraft entity.
func (d *ContactDraft) Validate() error {
	fields := make(map[string]string)

	if d.PartnerID <= 0 {
		fields["partner_id"] = "must be positive"
	}
	if d.CompanyID < 0 {
		fields["company_id"] = "must not be negative"
	}
	if d.Email != "" && !strings.Contains(d.Email, "@") {
		fields["email"] = "must be a valid email address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
