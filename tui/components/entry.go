package components

import (
	"unicode/utf8"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/grovetools/svcman/tui/annotated"
	"github.com/grovetools/svcman/tui/render"
)

// EntryBar is a one-line text input with a prompt. Editing happens at the
// end of the buffer only.
type EntryBar struct {
	prompt      string
	buf         *annotated.String
	cols        int
	needsRedraw bool
}

// NewEntryBar returns an empty entry bar showing prompt.
func NewEntryBar(prompt string) *EntryBar {
	return &EntryBar{prompt: prompt, buf: annotated.New(""), needsRedraw: true}
}

func (e *EntryBar) Resize(size render.Size) {
	e.cols = size.Cols
	e.needsRedraw = true
}

func (e *EntryBar) NeedsRedraw() bool { return e.needsRedraw }

// Text returns the buffer contents.
func (e *EntryBar) Text() string { return e.buf.String() }

// Insert appends r.
func (e *EntryBar) Insert(r rune) {
	e.buf.Insert(e.buf.Len(), string(r))
	e.needsRedraw = true
}

// DeleteBackward removes the last rune. It reports false on an empty buffer.
func (e *EntryBar) DeleteBackward() bool {
	text := e.buf.String()
	if text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(text)
	e.buf.TruncateRightFrom(len(text) - size)
	e.needsRedraw = true
	return true
}

// DeleteForward is a no-op: the caret never leaves the end of the buffer.
func (e *EntryBar) DeleteForward() bool { return false }

// Clear empties the buffer.
func (e *EntryBar) Clear() {
	if e.buf.Len() == 0 && len(e.buf.Annotations()) == 0 {
		return
	}
	e.buf = annotated.New("")
	e.needsRedraw = true
}

// SetMatched marks the whole buffer as a match, or clears the mark.
func (e *EntryBar) SetMatched(matched bool) {
	had := len(e.buf.Annotations()) > 0
	e.buf.ClearAnnotations()
	if matched {
		e.buf.AddAnnotation(annotated.KindMatch, 0, e.buf.Len())
	}
	if had != (len(e.buf.Annotations()) > 0) {
		e.needsRedraw = true
	}
}

// Matched reports whether the buffer carries the match mark.
func (e *EntryBar) Matched() bool {
	return len(e.buf.Annotations()) > 0
}

// CaretCol is the caret column right after the text, capped at the width.
func (e *EntryBar) CaretCol() int {
	col := xansi.StringWidth(e.prompt) + xansi.StringWidth(e.buf.String())
	if col > e.cols {
		col = e.cols
	}
	return col
}

func (e *EntryBar) Draw(sink render.Sink, originRow int) error {
	spans := append([]render.Span{{Text: e.prompt, Style: render.StylePrompt}}, Spans(e.buf)...)
	if err := sink.WriteSpans(originRow, spans); err != nil {
		return err
	}
	e.needsRedraw = false
	return nil
}
