package services

import "strings"

// Collection is the loaded item list plus an optional filtered view. The
// filtered view is always a subsequence of the items in their original order.
// All index based methods address the active view.
type Collection struct {
	items       []Item
	filtered    []Item
	filterQuery string
}

// NewCollection wraps items. The slice is not copied and must not be modified
// afterwards.
func NewCollection(items []Item) *Collection {
	return &Collection{items: items}
}

func (c *Collection) active() []Item {
	if c.filtered != nil {
		return c.filtered
	}
	return c.items
}

// Height returns the number of items in the active view.
func (c *Collection) Height() int {
	return len(c.active())
}

// Total returns the number of loaded items regardless of filter.
func (c *Collection) Total() int {
	return len(c.items)
}

// At returns the active item at idx.
func (c *Collection) At(idx int) (Item, bool) {
	items := c.active()
	if idx < 0 || idx >= len(items) {
		return Item{}, false
	}
	return items[idx], true
}

// Items returns a copy of the active view.
func (c *Collection) Items() []Item {
	return append([]Item(nil), c.active()...)
}

// Filter narrows the active view to items whose name starts with query. An
// empty query clears the filter.
func (c *Collection) Filter(query string) {
	c.filterQuery = query
	if query == "" {
		c.filtered = nil
		return
	}

	filtered := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if strings.HasPrefix(item.Name, query) {
			filtered = append(filtered, item)
		}
	}
	c.filtered = filtered
}

// FilterQuery returns the query of the active filter, empty if none.
func (c *Collection) FilterQuery() string {
	return c.filterQuery
}

// IsFiltered reports whether a filter is active.
func (c *Collection) IsFiltered() bool {
	return c.filtered != nil
}

// SearchForward returns the first index at or after from, wrapping past the
// end once, whose line contains query.
func (c *Collection) SearchForward(query string, from int) (int, bool) {
	items := c.active()
	n := len(items)
	if query == "" || n == 0 {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if strings.Contains(items[idx].Line, query) {
			return idx, true
		}
	}
	return 0, false
}

// SearchBackward returns the first index at or before from, wrapping past
// the start once, whose line contains query. A from past the end starts at
// the last item.
func (c *Collection) SearchBackward(query string, from int) (int, bool) {
	items := c.active()
	n := len(items)
	if query == "" || n == 0 {
		return 0, false
	}
	if from >= n {
		from = n - 1
	}
	if from < 0 {
		from = 0
	}
	for i := 0; i < n; i++ {
		idx := (from - i + n) % n
		if strings.Contains(items[idx].Line, query) {
			return idx, true
		}
	}
	return 0, false
}
