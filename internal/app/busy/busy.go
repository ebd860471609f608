// Package busy tracks the blocking indicator shown while an asynchronous
// call is in flight.
package busy

import (
	"sync"

	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

var _ ports.BusyIndicator = (*Tracker)(nil)

// State is the visible indicator state.
type State int

const (
	Idle State = iota
	Busy
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// Tracker is a ports.BusyIndicator that remembers its transitions. Calls are
// not reference counted: the state is whatever the last call set.
type Tracker struct {
	mu          sync.Mutex
	state       State
	transitions []State
}

// Block switches to Busy.
func (t *Tracker) Block() { t.set(Busy) }

// Unblock switches to Idle.
func (t *Tracker) Unblock() { t.set(Idle) }

func (t *Tracker) set(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
	t.transitions = append(t.transitions, s)
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Transitions returns a copy of every state set so far, oldest first.
func (t *Tracker) Transitions() []State {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]State, len(t.transitions))
	copy(out, t.transitions)
	return out
}
