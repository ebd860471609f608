// Package middleware holds the inbound HTTP pipeline. The server installs it
// in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging → Timeout → handler
//
// Every middleware is a Func and composes with Chain.
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status; later calls are dropped.
func (s *statusRecorder) WriteHeader(code int) {
	if s.started {
		return
	}
	s.status, s.started = code, true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.started = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
