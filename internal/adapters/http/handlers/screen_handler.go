package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// ScreenHandler handles HTTP requests for checkout screens.
type ScreenHandler struct {
	svc ports.CheckoutService
}

// NewScreenHandler creates a new ScreenHandler with the given service port.
func NewScreenHandler(svc ports.CheckoutService) *ScreenHandler {
	return &ScreenHandler{svc: svc}
}

// EnterScreen handles POST /api/v1/screens/{screen}/enter.
func (h *ScreenHandler) EnterScreen(w http.ResponseWriter, r *http.Request) {
	screen := chi.URLParam(r, "screen")

	v, err := h.svc.EnterScreen(r.Context(), screen)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ScreenEnterResponse{Screen: screen}
	if v != nil {
		o := dto.ToOrderResponse(*v)
		resp.Order = &o
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// ListActions handles GET /api/v1/screens/{screen}/actions.
func (h *ScreenHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	screen := chi.URLParam(r, "screen")

	actions, err := h.svc.ScreenActions(r.Context(), screen)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActionListResponse(screen, actions))
}
