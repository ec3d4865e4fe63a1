// Package services loads the unit list, narrows it by filter, searches it and
// runs control operations against single units.
package services

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// DefaultUnitType is the unit type listed when none is configured.
const DefaultUnitType = "service"

// Item is one listed unit. Name is fixed at construction; Line is the display
// text fitted to the width the list was loaded at.
type Item struct {
	Name string `json:"name"`
	Line string `json:"-"`

	Load        string `json:"load,omitempty"`
	Active      string `json:"active,omitempty"`
	Sub         string `json:"sub,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParseItem builds an Item from one line of list-units output. The name is
// the first field ending in suffix (".service"), falling back to the first
// field, which skips the status marker systemctl prints in non-plain mode.
// Lines without any field are rejected.
func ParseItem(raw, suffix string, width int) (Item, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Item{}, false
	}

	nameIdx := 0
	if suffix != "" {
		for i, f := range fields {
			if strings.HasSuffix(f, suffix) {
				nameIdx = i
				break
			}
		}
	}

	item := Item{
		Name: fields[nameIdx],
		Line: FitWidth(raw, width),
	}

	rest := fields[nameIdx+1:]
	if len(rest) >= 3 {
		item.Load, item.Active, item.Sub = rest[0], rest[1], rest[2]
		item.Description = strings.Join(rest[3:], " ")
	}
	return item, true
}

// ShortName returns the name without its unit type suffix.
func (i Item) ShortName(suffix string) string {
	return strings.TrimSuffix(i.Name, suffix)
}

// FitWidth pads or cuts s to exactly width cells. A non-positive width
// returns s unchanged.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = xansi.Truncate(s, width, "")
	if w := xansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// UnitSuffix returns the name suffix for a unit type.
func UnitSuffix(unitType string) string {
	if unitType == "" {
		return ""
	}
	return "." + unitType
}
