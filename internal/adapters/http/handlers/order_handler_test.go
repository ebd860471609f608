package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/checkout"
	"github.com/jsamuelsen11/checkout-fel/mocks"
)

func newOrderHandler(t *testing.T) (*handlers.OrderHandler, *mocks.MockCheckoutService) {
	t.Helper()
	svc := mocks.NewMockCheckoutService(t)
	return handlers.NewOrderHandler(svc), svc
}

// --- OpenOrder ---

func TestOpenOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	svc.EXPECT().OpenOrder(mock.Anything, int64(7), "table 4").Return(guardedOrder(), nil)

	body := jsonBody(t, dto.OpenOrderRequest{PartnerID: 7, Note: "table 4"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", body)
	req.Header.Set("Content-Type", "application/json")
	h.OpenOrder(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.OrderResponse](t, rec)
	if !resp.MustInvoice {
		t.Error("MustInvoice = false, want true")
	}
	if resp.Name != "Order 0001" {
		t.Errorf("Name = %q, want %q", resp.Name, "Order 0001")
	}
}

func TestOpenOrder_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newOrderHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{bad"))
	h.OpenOrder(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestOpenOrder_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newOrderHandler(t)

	body := jsonBody(t, dto.OpenOrderRequest{PartnerID: -3})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", body)
	h.OpenOrder(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CurrentOrder / GetOrder ---

func TestCurrentOrder_None(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	svc.EXPECT().CurrentOrder(mock.Anything).
		Return(checkout.OrderView{}, fmt.Errorf("no current order: %w", domain.ErrNotFound))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/current", nil)
	h.CurrentOrder(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	o := guardedOrder()
	svc.EXPECT().GetOrder(mock.Anything, o.ID).Return(o, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+o.ID, nil)
	req = withChiParams(req, map[string]string{"id": o.ID})
	h.GetOrder(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); resp.ID != o.ID {
		t.Errorf("ID = %q, want %q", resp.ID, o.ID)
	}
}

// --- SetMustInvoice ---

func TestSetMustInvoice_FalseIsReportedAsStored(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	o := guardedOrder()
	svc.EXPECT().SetMustInvoice(mock.Anything, o.ID, false).Return(o, nil)

	body := bytes.NewBufferString(`{"must_invoice": false}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+o.ID+"/must-invoice", body)
	req = withChiParams(req, map[string]string{"id": o.ID})
	h.SetMustInvoice(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); !resp.MustInvoice {
		t.Error("MustInvoice = false, want the stored true")
	}
}

func TestSetMustInvoice_MissingFlag(t *testing.T) {
	t.Parallel()
	h, _ := newOrderHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/x/must-invoice", bytes.NewBufferString(`{}`))
	req = withChiParams(req, map[string]string{"id": "x"})
	h.SetMustInvoice(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSetMustInvoice_UnknownOrder(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	svc.EXPECT().SetMustInvoice(mock.Anything, "missing", true).
		Return(checkout.OrderView{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/missing/must-invoice", bytes.NewBufferString(`{"must_invoice": true}`))
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.SetMustInvoice(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- ToggleMustInvoice ---

func TestToggleMustInvoice_Success(t *testing.T) {
	t.Parallel()
	h, svc := newOrderHandler(t)

	o := guardedOrder()
	svc.EXPECT().ToggleMustInvoice(mock.Anything, o.ID).Return(o, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+o.ID+"/must-invoice/toggle", nil)
	req = withChiParams(req, map[string]string{"id": o.ID})
	h.ToggleMustInvoice(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); !resp.MustInvoice {
		t.Error("MustInvoice = false after toggle, want true")
	}
}
