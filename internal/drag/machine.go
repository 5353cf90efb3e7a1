// Package drag implements the FREE/DRAGGED state machine of a draggable body and the
// ray math used to pick and move it with a pointer.
package drag

import "errors"

// State of a draggable body.
type State int

const (
	Free State = iota
	Dragged
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Dragged:
		return "dragged"
	}
	return "unknown"
}

// transition errors
var (
	ErrAlreadyDragging = errors.New("drag already in progress")
	ErrNotDragging     = errors.New("no drag in progress")
)

// Machine tracks whether the body is owned by the pointer. It is driven from the frame
// goroutine only and is not safe for concurrent use.
//
// OnStart and OnEnd run after the state changed; a nil hook is skipped.
type Machine struct {
	state   State
	OnStart func()
	OnEnd   func()
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Dragging reports whether the pointer currently owns the body.
func (m *Machine) Dragging() bool {
	return m.state == Dragged
}

// Start moves FREE -> DRAGGED.
func (m *Machine) Start() error {
	if m.state == Dragged {
		return ErrAlreadyDragging
	}
	m.state = Dragged
	if m.OnStart != nil {
		m.OnStart()
	}
	return nil
}

// End moves DRAGGED -> FREE.
func (m *Machine) End() error {
	if m.state != Dragged {
		return ErrNotDragging
	}
	m.state = Free
	if m.OnEnd != nil {
		m.OnEnd()
	}
	return nil
}
