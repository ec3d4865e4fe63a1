package app

import (
	"github.com/grovetools/svcman/tui/components"
	"github.com/grovetools/svcman/tui/render"
)

// layout places the components for the current size and mode:
// filter bar on top, the view below it, then the status bar and the
// message bar, which the search bar replaces while searching.
func (a *App) layout() []components.Placement {
	rows := a.size.Rows
	var placements []components.Placement

	if rows >= 1 {
		placements = append(placements, components.Placement{Component: a.filterBar, Row: 0})
	}
	if rows >= 3 {
		placements = append(placements,
			components.Placement{Component: a.view, Row: 1},
			components.Placement{Component: a.status, Row: rows - 2},
		)
	}
	if rows >= 2 {
		var bottom components.Component = a.message
		if a.mode == Search {
			bottom = a.searchBar
		}
		placements = append(placements, components.Placement{Component: bottom, Row: rows - 1})
	}
	return placements
}

func (a *App) statusLine() components.Status {
	return components.Status{
		Mode:       a.mode.String(),
		Multiplier: a.multiplier,
		Filter:     a.items.FilterQuery(),
		Position:   a.view.Controller().Location(),
		Height:     a.items.Height(),
		Total:      a.items.Total(),
	}
}

// Render redraws what changed and flushes the frame.
func (a *App) Render() error {
	a.status.Update(a.statusLine())
	components.Redraw(a.frame, a.layout(), a.log)

	switch {
	case a.mode == Filter && a.size.Rows >= 1:
		a.placeCaret(render.Position{Row: 0, Col: a.filterBar.CaretCol()})
	case a.mode == Search && a.size.Rows >= 2:
		a.placeCaret(render.Position{Row: a.size.Rows - 1, Col: a.searchBar.CaretCol()})
	default:
		a.frame.HideCaret()
	}

	return a.frame.Flush()
}

func (a *App) placeCaret(pos render.Position) {
	if err := a.frame.MoveCaret(pos); err != nil {
		if components.StrictRender() {
			panic(err)
		}
		a.log.WithError(err).Warn("Caret placement failed")
		a.frame.HideCaret()
		return
	}
	a.frame.ShowCaret()
}
