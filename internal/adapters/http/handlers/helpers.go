package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/domain"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
)

// maxBodyBytes caps request bodies. Contact drafts and order requests are a
// few hundred bytes.
const maxBodyBytes = 64 << 10

// parseID reads a positive int64 path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("path."+param, "must be a positive integer")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and validates it. On failure
// it writes the problem response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	err := decodeBody(w, r, dst)
	if err == nil {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeBody reads exactly one JSON value. Unknown fields are rejected so a
// misspelt "tax_id" is not silently dropped.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if dec.More() {
		return domain.NewValidationError("body", "must hold a single JSON value")
	}
	return nil
}

func bodyError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "must not be empty")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "malformed JSON: unexpected end of input")
	case errors.As(err, &syntaxErr):
		return domain.NewValidationError("body", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field, "must be a JSON "+jsonKind(typeErr.Type.Kind()))
	case errors.As(err, &sizeErr):
		return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", sizeErr.Limit))
	}
	if field, ok := unknownField(err); ok {
		return domain.NewValidationError(field, "is not a known field")
	}
	return domain.NewValidationError("body", "invalid JSON")
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// unknownField extracts the name from encoding/json's unknown field error,
// which has no exported type.
func unknownField(err error) (string, bool) {
	var name string
	if _, scanErr := fmt.Sscanf(err.Error(), "json: unknown field %q", &name); scanErr != nil {
		return "", false
	}
	return name, true
}
