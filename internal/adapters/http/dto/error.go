package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/domain/partner"
)

// problemTypePrefix namespaces the RFC 9457 "type" of every problem this
// service emits.
const problemTypePrefix = "urn:checkout-fel:problem:"

// ErrMethodNotAllowed is reported for a known path requested with a method
// it does not serve.
var ErrMethodNotAllowed = errors.New("method not allowed")

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

type problemKind struct {
	target error
	status int
	slug   string
}

// problemKinds is checked in order; the first match wins. Verification
// sentinels come before the generic ones they may be wrapped with.
var problemKinds = []problemKind{
	{partner.ErrEmptyTaxID, http.StatusBadRequest, "empty-tax-id"},
	{partner.ErrInvalidTaxID, http.StatusUnprocessableEntity, "invalid-tax-id"},
	{partner.ErrVerificationUnavailable, http.StatusBadGateway, "verification-unavailable"},
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not-found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "upstream-unavailable"},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method-not-allowed"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
}

// NewProblem builds the problem document for err without a request
// instance.
func NewProblem(err error) ErrorResponse {
	status, slug := http.StatusInternalServerError, "internal"
	for _, k := range problemKinds {
		if errors.Is(err, k.target) {
			status, slug = k.status, k.slug
			break
		}
	}

	resp := ErrorResponse{
		Type:   problemTypePrefix + slug,
		Title:  http.StatusText(status),
		Status: status,
		Detail: err.Error(),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// NewErrorResponse builds the problem document for err raised while serving
// r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := NewProblem(err)
	resp.Instance = r.RequestURI
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: location(field), Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}

// location places a field in the request: "body" and "path.*" keys are
// used as is, anything else is a body field.
func location(field string) string {
	if field == "body" || strings.HasPrefix(field, "path.") {
		return field
	}
	return "body." + field
}
