package keymap

import "github.com/charmbracelet/bubbles/key"

// Section names used in help output and the key reference.
const (
	SectionNavigation = "Navigation"
	SectionSearch     = "Search"
	SectionFilter     = "Filter"
	SectionActions    = "Unit control"
	SectionEditing    = "Editing"
	SectionSystem     = "System"
)

// Section is a named group of bindings.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is implemented by keymaps that group their bindings.
type SectionedKeyMap interface {
	Sections() []Section
}

func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

func NavigationSection(bindings ...key.Binding) Section {
	return Section{Name: SectionNavigation, Bindings: bindings}
}

func SearchSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSearch, Bindings: bindings}
}

func ActionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionActions, Bindings: bindings}
}

func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// FilterEnabled returns the enabled bindings of the section.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}

// IsEmpty reports whether the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	return len(s.FilterEnabled()) == 0
}
