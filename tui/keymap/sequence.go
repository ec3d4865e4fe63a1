package keymap

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// SequenceState buffers keys for multi-key bindings such as gg. The buffer is
// dropped when the next key arrives after the timeout.
type SequenceState struct {
	buffer     string
	lastUpdate time.Time
	timeout    time.Duration
	now        func() time.Time
}

// NewSequenceState creates a sequence buffer with a 1 second timeout.
func NewSequenceState() *SequenceState {
	return NewSequenceStateWithTimeout(time.Second)
}

// NewSequenceStateWithTimeout creates a sequence buffer with a custom timeout.
// Zero disables the timeout.
func NewSequenceStateWithTimeout(timeout time.Duration) *SequenceState {
	return &SequenceState{
		timeout: timeout,
		now:     time.Now,
	}
}

// UpdateKey appends keyStr to the buffer and returns it.
func (s *SequenceState) UpdateKey(keyStr string) string {
	now := s.now()
	if s.timeout > 0 && now.Sub(s.lastUpdate) > s.timeout {
		s.buffer = ""
	}
	s.lastUpdate = now
	s.buffer += keyStr
	return s.buffer
}

// Clear resets the buffer.
func (s *SequenceState) Clear() {
	s.buffer = ""
}

// Buffer returns the buffered keys.
func (s *SequenceState) Buffer() string {
	return s.buffer
}

// IsPending reports whether keys are buffered.
func (s *SequenceState) IsPending() bool {
	return len(s.buffer) > 0
}

// Matches reports whether one of the binding's keys equals buffer.
func Matches(buffer string, binding key.Binding) bool {
	if !binding.Enabled() {
		return false
	}
	for _, k := range binding.Keys() {
		if k == buffer {
			return true
		}
	}
	return false
}

// MatchesAny returns the index of the first binding matching buffer.
func MatchesAny(buffer string, bindings ...key.Binding) (int, bool) {
	for i, binding := range bindings {
		if Matches(buffer, binding) {
			return i, true
		}
	}
	return -1, false
}

// IsPrefix reports whether buffer is a strict prefix of one of the binding's keys.
func IsPrefix(buffer string, binding key.Binding) bool {
	if buffer == "" || !binding.Enabled() {
		return false
	}
	for _, k := range binding.Keys() {
		if len(buffer) < len(k) && k[:len(buffer)] == buffer {
			return true
		}
	}
	return false
}

// IsPrefixOfAny reports whether buffer is a strict prefix of any binding key.
func IsPrefixOfAny(buffer string, bindings ...key.Binding) bool {
	for _, binding := range bindings {
		if IsPrefix(buffer, binding) {
			return true
		}
	}
	return false
}

// SequenceResult is the outcome of feeding one key to a SequenceState.
type SequenceResult int

const (
	// SequenceNone means the buffer cannot grow into any sequence.
	SequenceNone SequenceResult = iota
	// SequencePending means the buffer is a prefix of a sequence.
	SequencePending
	// SequenceMatch means the buffer completed a sequence.
	SequenceMatch
)

// ProcessKey feeds keyStr to the buffer and classifies the result. On a match
// the index of the matching binding is returned. Callers clear the buffer on
// SequenceMatch and SequenceNone.
func (s *SequenceState) ProcessKey(keyStr string, bindings ...key.Binding) (SequenceResult, int) {
	buffer := s.UpdateKey(keyStr)

	if idx, ok := MatchesAny(buffer, bindings...); ok {
		return SequenceMatch, idx
	}

	if IsPrefixOfAny(buffer, bindings...) {
		return SequencePending, -1
	}

	return SequenceNone, -1
}
