// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// OrderResponse represents a single order in HTTP responses.
type OrderResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PartnerID   int64  `json:"partner_id"`
	Note        string `json:"note,omitempty"`
	MustInvoice bool   `json:"must_invoice"`
	CreatedAt   string `json:"created_at"`
}

// ToOrderResponse converts an order snapshot to an HTTP response DTO.
func ToOrderResponse(v checkout.OrderView) OrderResponse {
	return OrderResponse{
		ID:          v.ID,
		Name:        v.Name,
		PartnerID:   v.PartnerID,
		Note:        v.Note,
		MustInvoice: v.MustInvoice,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

// ScreenEnterResponse is returned when a screen becomes active. Order is
// null when there is no current order.
type ScreenEnterResponse struct {
	Screen string         `json:"screen"`
	Order  *OrderResponse `json:"order"`
}

// ActionResponse represents one screen action.
type ActionResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// ActionListResponse represents the actions a screen exposes.
type ActionListResponse struct {
	Screen  string           `json:"screen"`
	Actions []ActionResponse `json:"actions"`
}

// ToActionListResponse converts screen actions to an HTTP response DTO.
func ToActionListResponse(screen string, actions []checkout.Action) ActionListResponse {
	items := make([]ActionResponse, len(actions))
	for i, a := range actions {
		items[i] = ActionResponse{Name: a.Name, Label: a.Label}
	}
	return ActionListResponse{Screen: screen, Actions: items}
}

// DraftResponse represents a contact draft in HTTP responses.
type DraftResponse struct {
	PartnerID int64  `json:"partner_id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	VAT       string `json:"vat"`
	Street    string `json:"street"`
	City      string `json:"city"`
	CountryID string `json:"country_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ToDraftResponse converts a domain draft to an HTTP response DTO.
func ToDraftResponse(d partner.ContactDraft) DraftResponse {
	return DraftResponse{
		PartnerID: d.PartnerID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
		VAT:       d.VAT,
		Street:    d.Street,
		City:      d.City,
		CountryID: d.CountryID,
		Email:     d.Email,
		Phone:     d.Phone,
	}
}

// NotificationResponse is one message raised during a verification.
type NotificationResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// VerificationResponse reports a verification call: its outcome, the draft
// it left behind and the UI effects it requested. Problem is set for every
// outcome other than verified.
type VerificationResponse struct {
	Outcome         string                 `json:"outcome"`
	Reason          string                 `json:"reason,omitempty"`
	Problem         *ErrorResponse         `json:"problem,omitempty"`
	Draft           DraftResponse          `json:"draft"`
	Notifications   []NotificationResponse `json:"notifications"`
	RenderRequested bool                   `json:"render_requested"`
	Busy            bool                   `json:"busy"`
}

// ToVerificationResponse converts a verification report to an HTTP response
// DTO.
func ToVerificationResponse(r *ports.VerificationReport) VerificationResponse {
	notes := make([]NotificationResponse, len(r.Notifications))
	for i, n := range r.Notifications {
		notes[i] = NotificationResponse{Kind: n.Kind, Title: n.Title, Body: n.Body}
	}
	resp := VerificationResponse{
		Outcome:         r.Outcome.Kind.String(),
		Reason:          r.Outcome.Reason,
		Draft:           ToDraftResponse(r.Draft),
		Notifications:   notes,
		RenderRequested: r.RenderRequested,
		Busy:            r.Busy,
	}
	if err := r.Outcome.Err(); err != nil {
		p := NewProblem(err)
		resp.Problem = &p
	}
	return resp
}

// Readiness statuses.
const (
	ReadinessReady    = "ready"
	ReadinessDegraded = "degraded"
	ReadinessNotReady = "not_ready"
)

// ReadinessResponse reports each health check as "ok" or its failure text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
