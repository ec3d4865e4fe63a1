// Package viewport tracks the selected line and scroll offset of the unit
// list, including the saved position of an in-progress search.
package viewport

import "github.com/grovetools/svcman/tui/command"

// Lines is the searchable list the controller moves over.
type Lines interface {
	Height() int
	SearchForward(query string, from int) (int, bool)
	SearchBackward(query string, from int) (int, bool)
}

type searchSession struct {
	prevLocation int
	prevOffset   int
	query        string
}

// Controller owns the location, the scroll offset and the view height.
// After every mutation offset <= location < offset+height, unless the list
// is empty, in which case both are 0.
type Controller struct {
	lines    Lines
	location int
	offset   int
	height   int
	search   *searchSession
}

// New returns a controller at the top of lines with a view of height rows.
func New(lines Lines, height int) *Controller {
	c := &Controller{lines: lines}
	c.SetHeight(height)
	return c
}

func (c *Controller) Location() int { return c.location }
func (c *Controller) Offset() int   { return c.offset }
func (c *Controller) Height() int   { return c.height }

// SetHeight changes the number of visible rows.
func (c *Controller) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	c.height = height
	c.clamp()
	c.scroll()
}

// Move applies a movement times times. Lines move by one, pages by
// height-1 (at least one).
func (c *Controller) Move(m command.Move, times int) {
	if times < 1 {
		times = 1
	}
	step := 1
	if m == command.PageUp || m == command.PageDown {
		step = c.height - 1
		if step < 1 {
			step = 1
		}
	}

	switch m {
	case command.Up, command.PageUp:
		c.MoveTo(c.location - step*times)
	case command.Down, command.PageDown:
		c.MoveTo(c.location + step*times)
	}
}

// MoveTo selects idx, saturating at both ends of the list.
func (c *Controller) MoveTo(idx int) {
	c.location = idx
	c.clamp()
	c.scroll()
}

// ScrollToStart selects the first line.
func (c *Controller) ScrollToStart() {
	c.location = 0
	c.offset = 0
}

// ScrollToEnd selects the last line.
func (c *Controller) ScrollToEnd() {
	c.MoveTo(c.lines.Height() - 1)
}

// Refresh re-establishes the invariants after the list changed underneath.
func (c *Controller) Refresh() {
	c.clamp()
	c.scroll()
}

// CenterLocation scrolls so the location sits in the middle of the view.
func (c *Controller) CenterLocation() {
	half := (c.height + 1) / 2
	c.offset = c.location - half
	if c.offset < 0 {
		c.offset = 0
	}
	c.scroll()
}

// BeginSearch saves the current position so DismissSearch can restore it.
func (c *Controller) BeginSearch() {
	c.search = &searchSession{prevLocation: c.location, prevOffset: c.offset}
}

// Searching reports whether a search session is open.
func (c *Controller) Searching() bool {
	return c.search != nil
}

// Query returns the query of the open search session.
func (c *Controller) Query() string {
	if c.search == nil {
		return ""
	}
	return c.search.query
}

// SetQuery updates the search query and jumps to the first match at or after
// the current location. An empty query returns to the saved position. It
// reports whether the query matched.
func (c *Controller) SetQuery(query string) bool {
	if c.search == nil {
		c.BeginSearch()
	}
	c.search.query = query
	if query == "" {
		c.location, c.offset = c.search.prevLocation, c.search.prevOffset
		c.Refresh()
		return false
	}
	return c.jump(c.lines.SearchForward(query, c.location))
}

// SearchNext jumps to the next match of query after the location, wrapping.
func (c *Controller) SearchNext(query string) bool {
	n := c.lines.Height()
	if n == 0 {
		return false
	}
	return c.jump(c.lines.SearchForward(query, (c.location+1)%n))
}

// SearchPrev jumps to the previous match of query before the location, wrapping.
func (c *Controller) SearchPrev(query string) bool {
	n := c.lines.Height()
	if n == 0 {
		return false
	}
	from := c.location - 1
	if from < 0 {
		from = n - 1
	}
	return c.jump(c.lines.SearchBackward(query, from))
}

// DismissSearch closes the session and restores the saved position.
func (c *Controller) DismissSearch() {
	if c.search == nil {
		return
	}
	c.location, c.offset = c.search.prevLocation, c.search.prevOffset
	c.search = nil
	c.Refresh()
}

// CommitSearch closes the session keeping the current position and returns
// the committed query.
func (c *Controller) CommitSearch() string {
	if c.search == nil {
		return ""
	}
	query := c.search.query
	c.search = nil
	return query
}

func (c *Controller) jump(idx int, found bool) bool {
	if !found {
		return false
	}
	c.location = idx
	c.CenterLocation()
	return true
}

func (c *Controller) clamp() {
	n := c.lines.Height()
	if n == 0 || c.location < 0 {
		c.location = 0
	} else if c.location >= n {
		c.location = n - 1
	}
}

func (c *Controller) scroll() {
	if c.lines.Height() == 0 {
		c.location, c.offset = 0, 0
		return
	}
	if c.height == 0 {
		c.offset = c.location
		return
	}
	if c.location < c.offset {
		c.offset = c.location
	}
	if c.location >= c.offset+c.height {
		c.offset = c.location - c.height + 1
	}
}
