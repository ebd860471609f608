package dto

import (
	"strings"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

const (
	msgRequired    = "is required"
	msgNotNegative = "must not be negative"
)

// OpenOrderRequest represents the JSON body for opening a new order.
type OpenOrderRequest struct {
	PartnerID int64  `json:"partner_id"`
	Note      string `json:"note,omitempty"`
}

// Validate checks that the partner ID is usable.
// Returns a *domain.ValidationError if any checks fail.
func (r *OpenOrderRequest) Validate() error {
	if r.PartnerID < 0 {
		return domain.NewValidationError("partner_id", msgNotNegative)
	}
	return nil
}

// SetMustInvoiceRequest represents the JSON body for writing the invoicing
// flag. MustInvoice is a pointer so an omitted value can be told apart from
// false.
type SetMustInvoiceRequest struct {
	MustInvoice *bool `json:"must_invoice"`
}

// Validate checks that the flag is present.
func (r *SetMustInvoiceRequest) Validate() error {
	if r.MustInvoice == nil {
		return domain.NewValidationError("must_invoice", msgRequired)
	}
	return nil
}

// DraftRequest represents the JSON body for opening a contact editing
// session. The partner ID comes from the path.
type DraftRequest struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	VAT       string `json:"vat"`
	Street    string `json:"street"`
	City      string `json:"city"`
	CountryID string `json:"country_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate checks the fields the request carries on its own. Draft-level
// rules are enforced by partner.ContactDraft.Validate.
func (r *DraftRequest) Validate() error {
	if r.CompanyID < 0 {
		return domain.NewValidationError("company_id", msgNotNegative)
	}
	return nil
}

// ToDraft builds the domain draft for partnerID.
func (r *DraftRequest) ToDraft(partnerID int64) partner.ContactDraft {
	return partner.ContactDraft{
		PartnerID: partnerID,
		CompanyID: r.CompanyID,
		Name:      strings.TrimSpace(r.Name),
		VAT:       r.VAT,
		Street:    r.Street,
		City:      r.City,
		CountryID: r.CountryID,
		Email:     strings.TrimSpace(r.Email),
		Phone:     r.Phone,
	}
}

// VerifyTaxIDRequest represents the JSON body for a tax ID verification.
// An empty VAT is accepted here; the verification reports it as an outcome.
// SessionCompanyID names the point-of-sale session's company, when the call
// is made from a session.
type VerifyTaxIDRequest struct {
	VAT              string `json:"vat"`
	SessionCompanyID *int64 `json:"session_company_id,omitempty"`
}

// Validate checks the optional session company.
func (r *VerifyTaxIDRequest) Validate() error {
	if r.SessionCompanyID != nil && *r.SessionCompanyID < 0 {
		return domain.NewValidationError("session_company_id", msgNotNegative)
	}
	return nil
}

// Session returns the session context the request describes, or nil when
// the call was made outside a session.
func (r *VerifyTaxIDRequest) Session() *partner.SessionContext {
	if r.SessionCompanyID == nil {
		return nil
	}
	id := *r.SessionCompanyID
	return &partner.SessionContext{CompanyID: &id}
}
