// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// OrderHandler handles HTTP requests for checkout orders and their invoicing
// flag.
type OrderHandler struct {
	svc ports.CheckoutService
}

// NewOrderHandler creates a new OrderHandler with the given service port.
func NewOrderHandler(svc ports.CheckoutService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// OpenOrder handles POST /api/v1/orders.
func (h *OrderHandler) OpenOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.svc.OpenOrder(r.Context(), req.PartnerID, req.Note)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToOrderResponse(v))
}

// CurrentOrder handles GET /api/v1/orders/current.
func (h *OrderHandler) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.CurrentOrder(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(v))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(v))
}

// SetMustInvoice handles PUT /api/v1/orders/{id}/must-invoice. The response
// carries the stored value, which is not necessarily the requested one.
func (h *OrderHandler) SetMustInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.SetMustInvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.svc.SetMustInvoice(r.Context(), chi.URLParam(r, "id"), *req.MustInvoice)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(v))
}

// ToggleMustInvoice handles POST /api/v1/orders/{id}/must-invoice/toggle.
func (h *OrderHandler) ToggleMustInvoice(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ToggleMustInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToOrderResponse(v))
}
