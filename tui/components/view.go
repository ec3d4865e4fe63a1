package components

import (
	"github.com/grovetools/svcman/pkg/services"
	"github.com/grovetools/svcman/tui/highlight"
	"github.com/grovetools/svcman/tui/render"
	"github.com/grovetools/svcman/tui/viewport"
)

// viewState is everything a drawn view depends on.
type viewState struct {
	location  int
	offset    int
	rows      int
	cols      int
	height    int
	filter    string
	query     string
	selection bool
}

// View draws the visible window of the active collection. Rows past the end
// of the collection show "~".
type View struct {
	items     *services.Collection
	ctl       *viewport.Controller
	cols      int
	query     string
	selection bool
	drawn     *viewState
}

// NewView returns a view over items with selection highlighting on.
func NewView(items *services.Collection, size render.Size) *View {
	v := &View{items: items, selection: true}
	v.ctl = viewport.New(items, size.Rows)
	v.cols = size.Cols
	return v
}

// Controller exposes the location and scroll state.
func (v *View) Controller() *viewport.Controller { return v.ctl }

// Items returns the collection behind the view.
func (v *View) Items() *services.Collection { return v.items }

func (v *View) Resize(size render.Size) {
	v.cols = size.Cols
	v.ctl.SetHeight(size.Rows)
	v.drawn = nil
}

// SetSelection toggles the selected line band.
func (v *View) SetSelection(on bool) { v.selection = on }

// Selection reports whether the selected line band is drawn.
func (v *View) Selection() bool { return v.selection }

// SetQuery sets the query highlighted on every visible line.
func (v *View) SetQuery(query string) { v.query = query }

// Query returns the highlighted query.
func (v *View) Query() string { return v.query }

// Selected returns the item at the location.
func (v *View) Selected() (services.Item, bool) {
	return v.items.At(v.ctl.Location())
}

func (v *View) state() viewState {
	return viewState{
		location:  v.ctl.Location(),
		offset:    v.ctl.Offset(),
		rows:      v.ctl.Height(),
		cols:      v.cols,
		height:    v.items.Height(),
		filter:    v.items.FilterQuery(),
		query:     v.query,
		selection: v.selection,
	}
}

func (v *View) NeedsRedraw() bool {
	return v.drawn == nil || *v.drawn != v.state()
}

func (v *View) Draw(sink render.Sink, originRow int) error {
	state := v.state()
	h := highlight.New(v.query, state.location, v.selection)

	for r := 0; r < state.rows; r++ {
		idx := state.offset + r
		item, ok := v.items.At(idx)
		if !ok {
			if err := sink.WriteSpans(originRow+r, []render.Span{{Text: "~", Style: render.StyleMuted}}); err != nil {
				return err
			}
			continue
		}
		if err := sink.WriteSpans(originRow+r, Spans(h.Annotate(idx, item.Line))); err != nil {
			return err
		}
	}

	v.drawn = &state
	return nil
}
