package app

import "github.com/grovetools/svcman/pkg/services"

// Mode selects how commands are interpreted.
type Mode int

const (
	Normal Mode = iota
	Filter
	Search
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Filter:
		return "FILTER"
	case Search:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// Session is the outcome of the interactive run: whether to stop, and the
// operation to run once the terminal is released.
type Session struct {
	quit    bool
	pending *services.Operation
}

// Terminating reports whether the run loop should stop.
func (s Session) Terminating() bool {
	return s.quit
}

// Pending returns the deferred operation, if any.
func (s Session) Pending() (services.Operation, bool) {
	if s.pending == nil {
		return services.Operation{}, false
	}
	return *s.pending, true
}

func (s *Session) terminate() {
	s.quit = true
}

func (s *Session) terminateWith(op services.Operation) {
	s.quit = true
	s.pending = &op
}
