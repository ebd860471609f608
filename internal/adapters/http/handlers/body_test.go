package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
)

func TestRequestBodyProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{"empty", "", "body", "must not be empty"},
		{"malformed", `{"partner_id":`, "body", "malformed JSON"},
		{"wrong type", `{"partner_id":"seven"}`, "body.partner_id", "must be a JSON number"},
		{"unknown field", `{"partner_id":7,"customer":"Ana"}`, "body.customer", "is not a known field"},
		{"two values", `{"partner_id":7}{"partner_id":8}`, "body", "single JSON value"},
		{"too large", `{"note":"` + strings.Repeat("x", 70<<10) + `"}`, "body", "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// The mock fails the test if the service is reached.
			h, _ := newOrderHandler(t)
			rec := httptest.NewRecorder()
			h.OpenOrder(rec, httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
			problem := decodeJSON[dto.ErrorResponse](t, rec)
			assert.Equal(t, "urn:checkout-fel:problem:validation", problem.Type)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.wantField, problem.Errors[0].Location)
			assert.Contains(t, problem.Errors[0].Message, tt.wantMsg)
		})
	}
}

func TestPathIDProblem(t *testing.T) {
	t.Parallel()

	h, _ := newPartnerHandler(t)
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/partners/abc/draft", http.NoBody),
		map[string]string{"id": "abc"})
	h.GetDraft(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	problem := decodeJSON[dto.ErrorResponse](t, rec)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "path.id", problem.Errors[0].Location)
}
