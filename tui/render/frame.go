package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/grovetools/svcman/errors"
)

// Styles maps span styles to their lipgloss rendering.
type Styles map[Style]lipgloss.Style

// Frame is an in-memory Sink. Rows hold rendered cells; Flush composes them,
// with the caret drawn in, into the string handed to the terminal.
type Frame struct {
	size         Size
	rows         []string
	styles       Styles
	caret        Position
	caretVisible bool
	composed     string
	flushes      int
}

// NewFrame returns a blank frame of the given size.
func NewFrame(size Size, styles Styles) *Frame {
	f := &Frame{styles: styles}
	f.Resize(size)
	return f
}

// Resize discards the frame contents and reallocates it.
func (f *Frame) Resize(size Size) {
	if size.Rows < 0 {
		size.Rows = 0
	}
	if size.Cols < 0 {
		size.Cols = 0
	}
	f.size = size
	f.rows = make([]string, size.Rows)
	for i := range f.rows {
		f.rows[i] = strings.Repeat(" ", size.Cols)
	}
}

// Size returns the frame extent.
func (f *Frame) Size() Size {
	return f.size
}

// WriteRow replaces a row with unstyled text.
func (f *Frame) WriteRow(row int, text string) error {
	return f.WriteSpans(row, []Span{{Text: text, Style: StylePlain}})
}

// WriteSpans replaces a row with styled text, cut to the frame width.
func (f *Frame) WriteSpans(row int, spans []Span) error {
	if row < 0 || row >= f.size.Rows {
		return errors.RenderFailed(fmt.Sprintf("row %d outside frame of %d rows", row, f.size.Rows)).
			WithDetail("row", row)
	}

	var b strings.Builder
	width := 0
	for _, span := range spans {
		if width >= f.size.Cols {
			break
		}
		text := xansi.Truncate(span.Text, f.size.Cols-width, "")
		width += xansi.StringWidth(text)
		b.WriteString(f.style(span.Style).Render(text))
	}
	if width < f.size.Cols {
		b.WriteString(strings.Repeat(" ", f.size.Cols-width))
	}
	f.rows[row] = b.String()
	return nil
}

// MoveCaret places the caret. The position must lie inside the frame.
func (f *Frame) MoveCaret(pos Position) error {
	if pos.Row < 0 || pos.Row >= f.size.Rows || pos.Col < 0 || pos.Col > f.size.Cols {
		return errors.RenderFailed(fmt.Sprintf("caret %d:%d outside frame %s", pos.Row, pos.Col, f.size))
	}
	f.caret = pos
	return nil
}

func (f *Frame) ShowCaret() { f.caretVisible = true }

func (f *Frame) HideCaret() { f.caretVisible = false }

// Caret returns the caret position and whether it is shown.
func (f *Frame) Caret() (Position, bool) {
	return f.caret, f.caretVisible
}

// Flush composes the current rows into the output string.
func (f *Frame) Flush() error {
	rows := append([]string(nil), f.rows...)
	if f.caretVisible && f.caret.Row < len(rows) && f.caret.Col < f.size.Cols {
		rows[f.caret.Row] = f.withCaret(rows[f.caret.Row], f.caret.Col)
	}
	f.composed = strings.Join(rows, "\n")
	f.flushes++
	return nil
}

// String returns the last flushed frame.
func (f *Frame) String() string {
	return f.composed
}

// Flushes counts completed flushes.
func (f *Frame) Flushes() int {
	return f.flushes
}

// Row returns the plain text of a row without styling.
func (f *Frame) Row(row int) string {
	if row < 0 || row >= len(f.rows) {
		return ""
	}
	return xansi.Strip(f.rows[row])
}

func (f *Frame) withCaret(row string, col int) string {
	under := xansi.Strip(xansi.Cut(row, col, col+1))
	if under == "" {
		under = " "
	}
	return xansi.Cut(row, 0, col) + f.style(StyleCursor).Render(under) + xansi.Cut(row, col+1, f.size.Cols)
}

func (f *Frame) style(s Style) lipgloss.Style {
	if st, ok := f.styles[s]; ok {
		return st
	}
	if s == StyleCursor {
		return lipgloss.NewStyle().Reverse(true)
	}
	return lipgloss.NewStyle()
}
