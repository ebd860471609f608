package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
	"github.com/jsamuelsen11/checkout-fel/mocks"
)

func newPartnerHandler(t *testing.T) (*handlers.PartnerHandler, *mocks.MockPartnerService) {
	t.Helper()
	svc := mocks.NewMockPartnerService(t)
	return handlers.NewPartnerHandler(svc), svc
}

// --- BeginEdit ---

func TestBeginEdit_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	d := validDraft()
	svc.EXPECT().BeginEdit(mock.Anything, d).Return(d, nil)

	body := jsonBody(t, dto.DraftRequest{CompanyID: 1, Name: "Ana López", Email: "ana@example.com"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/partners/7/draft", body)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.BeginEdit(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.DraftResponse](t, rec); resp.PartnerID != 7 {
		t.Errorf("PartnerID = %d, want 7", resp.PartnerID)
	}
}

func TestBeginEdit_InvalidID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"abc", "0", "-4"} {
		t.Run(id, func(t *testing.T) {
			t.Parallel()
			h, _ := newPartnerHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/partners/"+id+"/draft", bytes.NewBufferString(`{}`))
			req = withChiParams(req, map[string]string{"id": id})
			h.BeginEdit(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

// --- GetDraft / DiscardEdit ---

func TestGetDraft_NoSession(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	svc.EXPECT().GetDraft(mock.Anything, int64(7)).Return(partner.ContactDraft{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners/7/draft", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.GetDraft(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDiscardEdit_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	svc.EXPECT().DiscardEdit(mock.Anything, int64(7)).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/partners/7/draft", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.DiscardEdit(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- VerifyTaxID ---

func TestVerifyTaxID_Verified(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	merged := validDraft()
	merged.VAT = "1234567-8"
	merged.Name = "ACME, S.A."
	report := &ports.VerificationReport{
		Outcome:         partner.Outcome{Kind: partner.OutcomeVerified},
		Draft:           merged,
		Notifications:   []ports.Notification{{Kind: "loading", Body: "Verifying tax ID…"}, {Kind: "dismiss"}},
		RenderRequested: true,
	}
	svc.EXPECT().
		VerifyTaxID(mock.Anything, int64(7), "1234567-8", mock.MatchedBy(func(s *partner.SessionContext) bool {
			return s != nil && s.CompanyID != nil && *s.CompanyID == 3
		})).
		Return(report, nil)

	body := bytes.NewBufferString(`{"vat": "1234567-8", "session_company_id": 3}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/partners/7/draft/vat-verification", body)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.VerifyTaxID(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.VerificationResponse](t, rec)
	if resp.Outcome != "verified" || resp.Draft.Name != "ACME, S.A." || !resp.RenderRequested {
		t.Errorf("response = %+v", resp)
	}
	if resp.Busy {
		t.Error("Busy = true after the call returned")
	}
}

func TestVerifyTaxID_FailureIsNotAnHTTPError(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	report := &ports.VerificationReport{
		Outcome: partner.Outcome{Kind: partner.OutcomeTransportError},
		Draft:   validDraft(),
		Notifications: []ports.Notification{
			{Kind: "error", Title: "Connection error", Body: "Could not reach the verification service."},
		},
	}
	svc.EXPECT().VerifyTaxID(mock.Anything, int64(7), "123", (*partner.SessionContext)(nil)).Return(report, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/partners/7/draft/vat-verification", bytes.NewBufferString(`{"vat": "123"}`))
	req = withChiParams(req, map[string]string{"id": "7"})
	h.VerifyTaxID(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.VerificationResponse](t, rec); resp.Outcome != "transport_error" {
		t.Errorf("Outcome = %q, want transport_error", resp.Outcome)
	}
}

func TestVerifyTaxID_NoSession(t *testing.T) {
	t.Parallel()
	h, svc := newPartnerHandler(t)

	svc.EXPECT().VerifyTaxID(mock.Anything, int64(9), "123", (*partner.SessionContext)(nil)).
		Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/partners/9/draft/vat-verification", bytes.NewBufferString(`{"vat": "123"}`))
	req = withChiParams(req, map[string]string{"id": "9"})
	h.VerifyTaxID(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
