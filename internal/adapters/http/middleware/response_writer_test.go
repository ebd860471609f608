package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	t.Run("defaults to 200", func(t *testing.T) {
		t.Parallel()

		rec := record(httptest.NewRecorder())
		assert.Equal(t, http.StatusOK, rec.status)
		assert.False(t, rec.started)
	})

	t.Run("keeps the first status", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rec := record(w)
		rec.WriteHeader(http.StatusCreated)
		rec.WriteHeader(http.StatusConflict)

		assert.Equal(t, http.StatusCreated, rec.status)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, rec.started)
	})

	t.Run("counts body bytes", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rec := record(w)
		_, _ = rec.Write([]byte(`{"must_invoice":`))
		_, _ = rec.Write([]byte(`true}`))

		assert.Equal(t, int64(len(`{"must_invoice":true}`)), rec.bytes)
		assert.True(t, rec.started)
		assert.Equal(t, `{"must_invoice":true}`, w.Body.String())
	})

	t.Run("unwraps", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		assert.Same(t, w, record(w).Unwrap())
	})
}
