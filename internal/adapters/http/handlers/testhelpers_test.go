package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func guardedOrder() checkout.OrderView {
	return checkout.OrderView{
		ID:          "0f9c2d4e-4a43-4f1e-9a53-0d1f2b8c7e61",
		Name:        "Order 0001",
		PartnerID:   7,
		MustInvoice: true,
		CreatedAt:   testTime,
	}
}

func validDraft() partner.ContactDraft {
	return partner.ContactDraft{
		PartnerID: 7,
		CompanyID: 1,
		Name:      "Ana López",
		Email:     "ana@example.com",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
