package gate

import (
	"context"
	"errors"
	"sync"
)

// State of a confirmation gate. A gate guards exactly one irreversible
// action at a time: it is Shown with a target, then either confirmed (the
// bound action runs while the gate is Busy) or cancelled. Both paths end in
// Hidden.
type State int

const (
	Hidden State = iota
	Shown
	Busy
)

func (s State) String() string {
	switch s {
	case Shown:
		return "shown"
	case Busy:
		return "busy"
	default:
		return "hidden"
	}
}

var (
	ErrNotPending = errors.New("gate: nothing pending")
	ErrBusy       = errors.New("gate: action in flight")
)

// Action is the side effect a gate guards, bound at Show time together with
// its target identifier.
type Action func(ctx context.Context, target string) error

// Gate is a two-step commit guard. Show captures the target and the action;
// Confirm runs the action exactly once; Cancel discards the target without
// side effect. Confirm and Cancel on a hidden gate are rejected, a second
// Confirm while the first is in flight is rejected, so double-submission can
// never run the action twice.
type Gate struct {
	mu      sync.Mutex
	state   State
	target  string
	title   string
	message string
	action  Action
}

func New() *Gate {
	return &Gate{state: Hidden}
}

// Show arms the gate for the given target. Re-showing replaces any previous
// un-confirmed target.
func (g *Gate) Show(title, message, target string, action Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Busy {
		return ErrBusy
	}

	g.state = Shown
	g.target = target
	g.title = title
	g.message = message
	g.action = action
	return nil
}

// Confirm runs the bound action for the captured target. The gate is Busy
// for the duration and returns to Hidden on completion whatever the outcome;
// the action's error is passed through to the caller.
func (g *Gate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	switch g.state {
	case Hidden:
		g.mu.Unlock()
		return ErrNotPending
	case Busy:
		g.mu.Unlock()
		return ErrBusy
	}
	g.state = Busy
	target := g.target
	action := g.action
	g.mu.Unlock()

	err := action(ctx, target)

	g.mu.Lock()
	g.reset()
	g.mu.Unlock()
	return err
}

// Cancel discards the pending target. No side effect.
func (g *Gate) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case Hidden:
		return ErrNotPending
	case Busy:
		return ErrBusy
	}

	g.reset()
	return nil
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending returns the captured target while the gate is armed.
func (g *Gate) Pending() (target string, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Hidden {
		return "", false
	}
	return g.target, true
}

func (g *Gate) Title() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.title
}

func (g *Gate) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message
}

func (g *Gate) reset() {
	g.state = Hidden
	g.target = ""
	g.title = ""
	g.message = ""
	g.action = nil
}
