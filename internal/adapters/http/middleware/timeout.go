package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer; if d passes first the client gets a 504 problem
// document and whatever the handler writes afterwards is dropped. The
// handler's context carries the deadline, so a registry call in flight is
// canceled with it.
func Timeout(d time.Duration) Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			var panicked any
			go func() {
				defer func() {
					panicked = recover()
					close(done)
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				// Re-raised here so Recovery, which runs on this goroutine, sees it.
				if panicked != nil {
					panic(panicked)
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.abandon()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	status    int
	body      []byte
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedWriter) abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
