package room

import (
	"context"
	"sync"
)

// State is the generation progress of a room, polled or awaited by the
// consumers of its layout
type State int

const (
	Empty State = iota
	Filled
	DatabaseGenerated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case DatabaseGenerated:
		return "database_generated"
	default:
		return "unknown"
	}
}

// Signal holds the state of a room and wakes up the goroutines waiting on
// it. States only move forward.
type Signal struct {
	mu      sync.Mutex
	state   State
	changed chan struct{}
}

// NewSignal returns a signal in the Empty state
func NewSignal() *Signal {
	return &Signal{
		changed: make(chan struct{}),
	}
}

// State returns the current state
func (s *Signal) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set moves the signal to state. Moving backwards is ignored.
func (s *Signal) Set(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state <= s.state {
		return
	}
	s.state = state
	close(s.changed)
	s.changed = make(chan struct{})
	instrumentState(state)
}

// Wait blocks until the signal reaches state or ctx is done
func (s *Signal) Wait(ctx context.Context, state State) error {
	for {
		s.mu.Lock()
		reached := s.state >= state
		changed := s.changed
		s.mu.Unlock()

		if reached {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}
