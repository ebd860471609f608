package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
)

// errInternalServer is all a client learns about a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and, when nothing
// has been written yet, a 500 problem response. http.ErrAbortHandler is
// re-raised so net/http can abort the connection as usual.
func Recovery(logger *slog.Logger) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !rec.started {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
