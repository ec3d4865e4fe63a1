// Package app is the interactive unit browser: it routes commands through
// the Normal, Filter and Search modes and lays the components out on screen.
package app

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/svcman/logging"
	"github.com/grovetools/svcman/pkg/services"
	"github.com/grovetools/svcman/tui/command"
	"github.com/grovetools/svcman/tui/components"
	"github.com/grovetools/svcman/tui/keymap"
	"github.com/grovetools/svcman/tui/render"
	"github.com/sirupsen/logrus"
)

// MaxMultiplier caps the repeat count typed in Normal mode.
const MaxMultiplier = 9999

// Options configures an App. Zero values fall back to defaults.
type Options struct {
	KeyMap    *keymap.KeyMap
	Size      render.Size
	Styles    render.Styles
	Clipboard func(string) error
	Now       func() time.Time
	Logger    *logrus.Entry
}

// App owns all interactive state. It is driven by Dispatch and drawn by Render.
type App struct {
	items      *services.Collection
	keys       keymap.KeyMap
	mode       Mode
	multiplier int
	seq        *keymap.SequenceState
	lastQuery  string
	session    Session
	size       render.Size

	frame     *render.Frame
	filterBar *components.EntryBar
	searchBar *components.EntryBar
	view      *components.View
	status    *components.StatusBar
	message   *components.MessageBar
	help      help.Model

	clipboard func(string) error
	log       *logrus.Entry
}

// New returns an App over items in Normal mode.
func New(items *services.Collection, opts Options) *App {
	km := keymap.Default()
	if opts.KeyMap != nil {
		km = *opts.KeyMap
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	writeClipboard := opts.Clipboard
	if writeClipboard == nil {
		writeClipboard = clipboard.WriteAll
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewLogger("tui")
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles = help.Styles{
		ShortKey:       lipgloss.NewStyle(),
		ShortDesc:      lipgloss.NewStyle(),
		ShortSeparator: lipgloss.NewStyle(),
		Ellipsis:       lipgloss.NewStyle(),
	}

	a := &App{
		items:     items,
		keys:      km,
		seq:       keymap.NewSequenceState(),
		frame:     render.NewFrame(opts.Size, opts.Styles),
		filterBar: components.NewEntryBar("> "),
		searchBar: components.NewEntryBar("/"),
		view:      components.NewView(items, render.Size{}),
		status:    components.NewStatusBar(),
		message: components.NewMessageBar(
			fmt.Sprintf("filter: %s | search: %s", km.Filter.Help().Key, km.Search.Help().Key),
			fmt.Sprintf("keys: %s | quit: %s", km.Help.Help().Key, km.Close.Help().Key),
		).WithClock(now),
		help:      h,
		clipboard: writeClipboard,
		log:       log,
	}
	a.resize(opts.Size)
	return a
}

func (a *App) Mode() Mode { return a.mode }
func (a *App) Session() Session { return a.session }
func (a *App) Multiplier() int { return a.multiplier }
func (a *App) Frame() *render.Frame { return a.frame }
func (a *App) View() *components.View { return a.view }
func (a *App) Message() string { return a.message.Text() }
func (a *App) KeyMap() keymap.KeyMap { return a.keys }
func (a *App) LastQuery() string { return a.lastQuery }
func (a *App) FilterText() string { return a.filterBar.Text() }
func (a *App) SearchText() string { return a.searchBar.Text() }
func (a *App) Items() *services.Collection { return a.items }

// Dispatch applies one command. Resize and Quit behave the same in every
// mode; everything else goes to the handler of the current mode.
func (a *App) Dispatch(cmd command.Command) {
	if sys, ok := cmd.(command.System); ok {
		switch sys.Op {
		case command.Resize:
			a.resize(sys.Size)
			return
		case command.Quit:
			a.session.terminate()
			return
		}
	}

	switch a.mode {
	case Normal:
		a.dispatchNormal(cmd)
	case Filter:
		a.dispatchFilter(cmd)
	case Search:
		a.dispatchSearch(cmd)
	}
}

func (a *App) viewRows() int {
	if a.size.Rows < 3 {
		return 0
	}
	return a.size.Rows - 3
}

func (a *App) resize(size render.Size) {
	if size.Rows < 0 {
		size.Rows = 0
	}
	if size.Cols < 0 {
		size.Cols = 0
	}
	a.size = size
	a.frame.Resize(size)

	line := render.Size{Rows: 1, Cols: size.Cols}
	a.filterBar.Resize(line)
	a.status.Resize(line)
	a.message.Resize(line)
	a.searchBar.Resize(line)
	a.view.Resize(render.Size{Rows: a.viewRows(), Cols: size.Cols})
}

// count is the pending multiplier as a repeat count.
func (a *App) count() int {
	if a.multiplier < 1 {
		return 1
	}
	return a.multiplier
}

func (a *App) resetPrefix() {
	a.multiplier = 0
	a.seq.Clear()
}

func (a *App) enterFilter() {
	a.mode = Filter
	a.view.SetSelection(false)
	a.view.Controller().ScrollToStart()
}

func (a *App) leaveFilter() {
	a.mode = Normal
	a.view.SetSelection(true)
}

func (a *App) refilter() {
	a.items.Filter(a.filterBar.Text())
	a.view.Controller().ScrollToStart()
}

func (a *App) enterSearch() {
	a.mode = Search
	a.searchBar.Clear()
	a.searchBar.Resize(render.Size{Rows: 1, Cols: a.size.Cols})
	a.view.SetQuery("")
	a.view.Controller().BeginSearch()
}

func (a *App) leaveSearch() {
	a.mode = Normal
	a.searchBar.Clear()
	a.message.Resize(render.Size{Rows: 1, Cols: a.size.Cols})
}

func (a *App) updateSearch() {
	query := a.searchBar.Text()
	found := a.view.Controller().SetQuery(query)
	a.view.SetQuery(query)
	a.searchBar.SetMatched(found)
}
