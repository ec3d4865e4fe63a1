package components

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/grovetools/svcman/tui/render"
)

// Status is what the status bar shows.
type Status struct {
	Mode       string
	Multiplier int
	Filter     string
	Position   int
	Height     int
	Total      int
}

// StatusBar is the inverted line between the view and the message bar.
type StatusBar struct {
	status      Status
	cols        int
	needsRedraw bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{needsRedraw: true}
}

func (s *StatusBar) Resize(size render.Size) {
	s.cols = size.Cols
	s.needsRedraw = true
}

func (s *StatusBar) NeedsRedraw() bool { return s.needsRedraw }

// Update replaces the displayed status.
func (s *StatusBar) Update(status Status) {
	if status != s.status {
		s.status = status
		s.needsRedraw = true
	}
}

// Line renders the status text padded to the bar width.
func (s *StatusBar) Line() string {
	st := s.status
	left := " " + st.Mode
	if st.Multiplier > 0 {
		left += fmt.Sprintf("  %d", st.Multiplier)
	}
	if st.Filter != "" {
		left += fmt.Sprintf("  [filter: %s]", st.Filter)
	}

	position := 0
	if st.Height > 0 {
		position = st.Position + 1
	}
	right := fmt.Sprintf("%d/%d", position, st.Height)
	if st.Height != st.Total {
		right += fmt.Sprintf(" (%d)", st.Total)
	}
	right += " "

	gap := s.cols - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) Draw(sink render.Sink, originRow int) error {
	if err := sink.WriteSpans(originRow, []render.Span{{Text: s.Line(), Style: render.StyleStatus}}); err != nil {
		return err
	}
	s.needsRedraw = false
	return nil
}
