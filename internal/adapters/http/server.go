package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
)

// Server serves the checkout API until its context is canceled, then drains
// in-flight requests for at most the configured shutdown timeout.
type Server struct {
	srv    *http.Server
	cfg    config.ServerConfig
	logger *slog.Logger

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

// NewServer returns a server for handler. A nil logger discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		cfg:    cfg,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Run listens and serves until ctx is canceled or the listener fails. On
// cancellation it stops accepting connections and waits for running
// requests; it returns nil when they all finished in time.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("HTTP server listening", slog.String("addr", ln.Addr().String()))

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("draining HTTP server", slog.Duration("timeout", s.cfg.ShutdownTimeout))

	// ctx is already canceled; the drain gets its own deadline.
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(drainCtx); err != nil {
		_ = s.srv.Close()
		return fmt.Errorf("draining HTTP server: %w", err)
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

// Ready is closed once Run is listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is the bound address once Ready is closed and the configured one
// before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr != nil {
		return s.addr.String()
	}
	return s.srv.Addr
}
