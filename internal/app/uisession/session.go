// Package uisession records the UI effects raised while one request is
// handled, so the HTTP layer can return them to the checkout frontend.
package uisession

import (
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/checkout-fel/internal/app/busy"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

// Notification kinds.
const (
	KindError   = "error"
	KindLoading = "loading"
	KindDismiss = "dismiss"
)

var (
	_ ports.Notifier      = (*Session)(nil)
	_ ports.Renderer      = (*Session)(nil)
	_ ports.BusyIndicator = (*Session)(nil)
)

// Session is a request-scoped Notifier, Renderer and BusyIndicator.
type Session struct {
	busy.Tracker

	logger *slog.Logger

	mu            sync.Mutex
	notifications []ports.Notification
	rendered      bool
}

// New creates an empty session. Notifications are also logged at debug.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{logger: logger}
}

// ShowError records an error dialog.
func (s *Session) ShowError(title, body string) {
	s.add(ports.Notification{Kind: KindError, Title: title, Body: body})
}

// ShowLoading records a loading indicator.
func (s *Session) ShowLoading(message string) {
	s.add(ports.Notification{Kind: KindLoading, Body: message})
}

// Dismiss records the removal of the loading indicator.
func (s *Session) Dismiss() {
	s.add(ports.Notification{Kind: KindDismiss})
}

// RequestRender marks the view as needing a re-render.
func (s *Session) RequestRender() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rendered = true
}

func (s *Session) add(n ports.Notification) {
	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	s.logger.Debug("ui notification",
		slog.String("kind", n.Kind),
		slog.String("title", n.Title),
	)
}

// Notifications returns a copy of the recorded notifications in order.
func (s *Session) Notifications() []ports.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// RenderRequested reports whether RequestRender was called.
func (s *Session) RenderRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered
}
