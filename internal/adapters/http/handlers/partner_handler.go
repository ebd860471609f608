package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// PartnerHandler handles HTTP requests for contact editing sessions and tax
// ID verification.
type PartnerHandler struct {
	svc ports.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler with the given service port.
func NewPartnerHandler(svc ports.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// BeginEdit handles PUT /api/v1/partners/{id}/draft.
func (h *PartnerHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.svc.BeginEdit(r.Context(), req.ToDraft(id))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDraftResponse(d))
}

// GetDraft handles GET /api/v1/partners/{id}/draft.
func (h *PartnerHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetDraft(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDraftResponse(d))
}

// DiscardEdit handles DELETE /api/v1/partners/{id}/draft.
func (h *PartnerHandler) DiscardEdit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DiscardEdit(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// VerifyTaxID handles POST /api/v1/partners/{id}/draft/vat-verification.
// Verification failures are part of a 200 response; only a missing session
// or a malformed request produce an error status.
func (h *PartnerHandler) VerifyTaxID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.VerifyTaxIDRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.svc.VerifyTaxID(r.Context(), id, req.VAT, req.Session())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVerificationResponse(report))
}
