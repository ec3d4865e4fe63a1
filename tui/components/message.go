package components

import (
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/grovetools/svcman/tui/render"
)

// MessageTTL is how long a message stays before the hints come back.
const MessageTTL = 3 * time.Second

// MessageBar shows transient messages on the bottom row, and key hints when
// there is no message.
type MessageBar struct {
	text        string
	isError     bool
	expires     time.Time
	hintLeft    string
	hintRight   string
	cols        int
	now         func() time.Time
	needsRedraw bool
}

// NewMessageBar returns a message bar showing the given hints.
func NewMessageBar(hintLeft, hintRight string) *MessageBar {
	return &MessageBar{hintLeft: hintLeft, hintRight: hintRight, now: time.Now, needsRedraw: true}
}

// WithClock replaces the clock used for expiry.
func (m *MessageBar) WithClock(now func() time.Time) *MessageBar {
	m.now = now
	return m
}

func (m *MessageBar) Resize(size render.Size) {
	m.cols = size.Cols
	m.needsRedraw = true
}

// NeedsRedraw also expires a stale message.
func (m *MessageBar) NeedsRedraw() bool {
	if m.text != "" && !m.now().Before(m.expires) {
		m.text = ""
		m.isError = false
		m.needsRedraw = true
	}
	return m.needsRedraw
}

// Show displays text for MessageTTL.
func (m *MessageBar) Show(text string) {
	m.show(text, false)
}

// ShowError displays text in the error style for MessageTTL.
func (m *MessageBar) ShowError(text string) {
	m.show(text, true)
}

func (m *MessageBar) show(text string, isError bool) {
	m.text = text
	m.isError = isError
	m.expires = m.now().Add(MessageTTL)
	m.needsRedraw = true
}

// Text returns the current message, empty when hints are shown.
func (m *MessageBar) Text() string {
	return m.text
}

// Line renders the plain text of the bar.
func (m *MessageBar) Line() string {
	if m.text != "" {
		return m.text
	}
	gap := m.cols - xansi.StringWidth(m.hintLeft) - xansi.StringWidth(m.hintRight)
	if gap < 1 {
		gap = 1
	}
	return m.hintLeft + strings.Repeat(" ", gap) + m.hintRight
}

func (m *MessageBar) Draw(sink render.Sink, originRow int) error {
	style := render.StyleMuted
	if m.text != "" {
		style = render.StylePlain
		if m.isError {
			style = render.StyleError
		}
	}
	if err := sink.WriteSpans(originRow, []render.Span{{Text: m.Line(), Style: style}}); err != nil {
		return err
	}
	m.needsRedraw = false
	return nil
}
