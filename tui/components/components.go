// Package components holds the fixed set of screen regions svcman draws:
// the filter bar, the unit view, the status bar, and the message or search
// bar. Each region redraws only when its state changed since the last draw.
package components

import (
	"github.com/grovetools/svcman/tui/annotated"
	"github.com/grovetools/svcman/tui/render"
	"github.com/sirupsen/logrus"
)

// Component is one screen region.
type Component interface {
	Resize(size render.Size)
	NeedsRedraw() bool
	Draw(sink render.Sink, originRow int) error
}

// Placement pins a component to its first row.
type Placement struct {
	Component Component
	Row       int
}

// Redraw draws every placed component that needs it. A failed draw panics
// in debug builds; otherwise it is logged and the component stays dirty so
// the next frame retries it.
func Redraw(sink render.Sink, placements []Placement, log *logrus.Entry) {
	for _, p := range placements {
		if p.Component == nil || !p.Component.NeedsRedraw() {
			continue
		}
		if err := p.Component.Draw(sink, p.Row); err != nil {
			if strictRender {
				panic(err)
			}
			if log != nil {
				log.WithError(err).WithField("row", p.Row).Warn("Render failed")
			}
		}
	}
}

// StrictRender reports whether render failures abort the program.
func StrictRender() bool {
	return strictRender
}

var kindStyles = map[annotated.Kind]render.Style{
	annotated.KindMatch:         render.StyleMatch,
	annotated.KindSelectedMatch: render.StyleSelectedMatch,
	annotated.KindSelected:      render.StyleSelected,
}

// Spans converts an annotated string into styled spans.
func Spans(s *annotated.String) []render.Span {
	parts := s.Parts()
	spans := make([]render.Span, 0, len(parts))
	for _, part := range parts {
		style := render.StylePlain
		if part.Annotated {
			style = kindStyles[part.Kind]
		}
		spans = append(spans, render.Span{Text: part.Text, Style: style})
	}
	return spans
}
