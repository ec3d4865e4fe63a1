// Package render defines the drawing surface the TUI writes frames into.
package render

import "fmt"

// Size is a terminal or component extent in cells.
type Size struct {
	Rows int
	Cols int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// Position is a zero-based cell coordinate.
type Position struct {
	Row int
	Col int
}

// Style names a span style. The sink decides how each one looks.
type Style int

const (
	StylePlain Style = iota
	StyleMatch
	StyleSelectedMatch
	StyleSelected
	StyleStatus
	StylePrompt
	StyleMuted
	StyleCursor
	StyleError
)

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style Style
}

// Sink receives one frame at a time. Each write clears the target row first.
type Sink interface {
	WriteRow(row int, text string) error
	WriteSpans(row int, spans []Span) error
	MoveCaret(pos Position) error
	ShowCaret()
	HideCaret()
	Flush() error
}
