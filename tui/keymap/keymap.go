package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/svcman/config"
)

// KeyMap holds every binding the service viewer reacts to. The first group
// is matched against raw key events in all modes; the rest are matched only
// in Normal mode against the key that produced an edit command.
type KeyMap struct {
	// Global
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Confirm        key.Binding
	DeleteBackward key.Binding
	DeleteForward  key.Binding
	Dismiss        key.Binding
	Quit           key.Binding

	// Normal mode navigation
	LineUp   key.Binding
	LineDown key.Binding
	Top      key.Binding // gg sequence
	Bottom   key.Binding

	// Normal mode search and filter
	Search     key.Binding
	SearchNext key.Binding
	SearchPrev key.Binding
	Filter     key.Binding

	// Normal mode unit control
	Start   key.Binding
	Stop    key.Binding
	Reload  key.Binding
	Restart key.Binding
	Enable  key.Binding
	Disable key.Binding
	Status  key.Binding

	// Normal mode misc
	Yank  key.Binding
	Help  key.Binding
	Close key.Binding
}

// Default returns the default vim-flavoured keymap.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("C-d", "page down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		DeleteBackward: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
		DeleteForward: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete forward"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("C-q", "exit"),
		),

		LineUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "line up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "line down"),
		),
		Top: key.NewBinding(
			key.WithKeys("gg"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom / line N"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SearchNext: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		SearchPrev: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev match"),
		),
		Filter: key.NewBinding(
			key.WithKeys("i", "I", "a", "A"),
			key.WithHelp("i", "filter"),
		),

		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Restart: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "restart"),
		),
		Enable: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enable"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable"),
		),
		Status: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "status"),
		),

		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank name"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Load returns the default keymap with the overrides from cfg applied.
func Load(cfg *config.Config) KeyMap {
	km := Default()
	if cfg == nil || cfg.TUI == nil {
		return km
	}
	ApplyOverrides(&km, cfg.TUI.Keybindings)
	return km
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Search, k.Start, k.Stop, k.Restart, k.Status, k.Close}
}

// FullHelp returns the bindings grouped for the multi-column help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	groups := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		if enabled := s.FilterEnabled(); len(enabled) > 0 {
			groups = append(groups, enabled)
		}
	}
	return groups
}

// Sections returns every binding grouped for the key reference.
func (k KeyMap) Sections() []Section {
	return []Section{
		NavigationSection(k.LineDown, k.LineUp, k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom),
		SearchSection(k.Search, k.SearchNext, k.SearchPrev),
		NewSection(SectionFilter, k.Filter),
		ActionsSection(k.Start, k.Stop, k.Reload, k.Restart, k.Enable, k.Disable, k.Status, k.Yank),
		NewSection(SectionEditing, k.Confirm, k.DeleteBackward, k.DeleteForward),
		SystemSection(k.Help, k.Dismiss, k.Close, k.Quit),
	}
}

// SequenceBindings returns the Normal mode bindings made of more than one key.
func (k KeyMap) SequenceBindings() []key.Binding {
	return []key.Binding{k.Top}
}
