// Package http is the inbound HTTP adapter: routes, server lifecycle and
// the JSON contract POS terminals talk to.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

// Handlers groups the endpoint handlers the router dispatches to.
type Handlers struct {
	Orders   *handlers.OrderHandler
	Screens  *handlers.ScreenHandler
	Partners *handlers.PartnerHandler
	Health   *handlers.HealthHandler
}

// NewRouter registers every route on a chi mux wrapped by middlewares,
// outermost first. Unknown paths and methods get problem documents like
// every other error.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/orders", h.Orders.OpenOrder)
		r.Get("/orders/current", h.Orders.CurrentOrder)
		r.Get("/orders/{id}", h.Orders.GetOrder)
		r.Put("/orders/{id}/must-invoice", h.Orders.SetMustInvoice)
		r.Post("/orders/{id}/must-invoice/toggle", h.Orders.ToggleMustInvoice)

		r.Post("/screens/{screen}/enter", h.Screens.EnterScreen)
		r.Get("/screens/{screen}/actions", h.Screens.ListActions)

		r.Put("/partners/{id}/draft", h.Partners.BeginEdit)
		r.Get("/partners/{id}/draft", h.Partners.GetDraft)
		r.Delete("/partners/{id}/draft", h.Partners.DiscardEdit)
		r.Post("/partners/{id}/draft/vat-verification", h.Partners.VerifyTaxID)
	})

	return r
}
