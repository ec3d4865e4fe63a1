package app

import (
	"fmt"

	"github.com/grovetools/svcman/pkg/services"
	"github.com/grovetools/svcman/tui/command"
	"github.com/grovetools/svcman/tui/keymap"
)

func (a *App) dispatchNormal(cmd command.Command) {
	switch c := cmd.(type) {
	case command.Move:
		a.view.Controller().Move(c, a.count())
		a.resetPrefix()
	case command.System:
		if c.Op == command.Dismiss {
			a.resetPrefix()
			a.view.SetQuery("")
		}
	case command.Edit:
		switch c.Op {
		case command.Insert:
			if c.Pasted {
				return
			}
			a.normalKey(c.Key, c.Char)
		case command.InsertNewLine:
			a.normalKey(c.Key, '\n')
		}
	}
}

func (a *App) normalKey(keyStr string, ch rune) {
	if ch >= '0' && ch <= '9' && !a.seq.IsPending() {
		a.multiplier = a.multiplier*10 + int(ch-'0')
		if a.multiplier > MaxMultiplier {
			a.multiplier = MaxMultiplier
		}
		return
	}

	sequences := a.keys.SequenceBindings()
	result, _ := a.seq.ProcessKey(keyStr, sequences...)
	if result == keymap.SequenceNone && a.seq.Buffer() != keyStr {
		// The buffered prefix went nowhere; retry the key on its own.
		a.seq.Clear()
		result, _ = a.seq.ProcessKey(keyStr, sequences...)
	}

	switch result {
	case keymap.SequencePending:
		return
	case keymap.SequenceMatch:
		if keymap.Matches(a.seq.Buffer(), a.keys.Top) {
			a.view.Controller().MoveTo(a.count() - 1)
		}
		a.resetPrefix()
		return
	}
	a.seq.Clear()

	a.normalAction(keyStr)
	a.resetPrefix()
}

func (a *App) normalAction(keyStr string) {
	k := a.keys
	ctl := a.view.Controller()

	switch {
	case keymap.Matches(keyStr, k.LineDown):
		ctl.Move(command.Down, a.count())
	case keymap.Matches(keyStr, k.LineUp):
		ctl.Move(command.Up, a.count())
	case keymap.Matches(keyStr, k.Bottom):
		if a.multiplier > 0 {
			ctl.MoveTo(a.multiplier - 1)
		} else {
			ctl.ScrollToEnd()
		}
	case keymap.Matches(keyStr, k.Search):
		a.enterSearch()
	case keymap.Matches(keyStr, k.SearchNext):
		a.repeatSearch(true)
	case keymap.Matches(keyStr, k.SearchPrev):
		a.repeatSearch(false)
	case keymap.Matches(keyStr, k.Filter):
		a.enterFilter()
	case keymap.Matches(keyStr, k.Start):
		a.requestOperation(services.Start)
	case keymap.Matches(keyStr, k.Stop):
		a.requestOperation(services.Stop)
	case keymap.Matches(keyStr, k.Reload):
		a.requestOperation(services.Reload)
	case keymap.Matches(keyStr, k.Restart):
		a.requestOperation(services.Restart)
	case keymap.Matches(keyStr, k.Enable):
		a.requestOperation(services.Enable)
	case keymap.Matches(keyStr, k.Disable):
		a.requestOperation(services.Disable)
	case keymap.Matches(keyStr, k.Status):
		a.requestOperation(services.Status)
	case keymap.Matches(keyStr, k.Yank):
		a.yank()
	case keymap.Matches(keyStr, k.Help):
		a.message.Show(a.help.ShortHelpView(k.ShortHelp()))
	case keymap.Matches(keyStr, k.Close):
		a.session.terminate()
	}
}

func (a *App) requestOperation(kind services.Kind) {
	item, ok := a.view.Selected()
	if !ok {
		a.message.ShowError("no unit selected")
		return
	}
	op := services.Operation{Kind: kind, Name: item.Name}
	a.log.WithField("operation", op.String()).Debug("Operation requested")
	a.session.terminateWith(op)
}

func (a *App) repeatSearch(forward bool) {
	if a.lastQuery == "" {
		a.message.ShowError("no previous search")
		return
	}
	ctl := a.view.Controller()
	found := false
	for i := 0; i < a.count(); i++ {
		if forward {
			found = ctl.SearchNext(a.lastQuery)
		} else {
			found = ctl.SearchPrev(a.lastQuery)
		}
		if !found {
			break
		}
	}
	a.view.SetQuery(a.lastQuery)
	if !found {
		a.message.ShowError(fmt.Sprintf("pattern not found: %s", a.lastQuery))
	}
}

func (a *App) yank() {
	item, ok := a.view.Selected()
	if !ok {
		a.message.ShowError("no unit selected")
		return
	}
	if err := a.clipboard(item.Name); err != nil {
		a.log.WithError(err).Warn("Clipboard write failed")
		a.message.ShowError(fmt.Sprintf("clipboard unavailable: %v", err))
		return
	}
	a.message.Show(fmt.Sprintf("yanked %s", item.Name))
}

func (a *App) dispatchFilter(cmd command.Command) {
	switch c := cmd.(type) {
	case command.Edit:
		switch c.Op {
		case command.Insert:
			a.filterBar.Insert(c.Char)
			a.refilter()
		case command.DeleteBackward:
			if a.filterBar.DeleteBackward() {
				a.refilter()
			}
		case command.InsertNewLine:
			a.leaveFilter()
		}
	case command.System:
		if c.Op == command.Dismiss {
			a.leaveFilter()
		}
	}
}

func (a *App) dispatchSearch(cmd command.Command) {
	ctl := a.view.Controller()

	switch c := cmd.(type) {
	case command.Edit:
		switch c.Op {
		case command.Insert:
			a.searchBar.Insert(c.Char)
			a.updateSearch()
		case command.DeleteBackward:
			if a.searchBar.DeleteBackward() {
				a.updateSearch()
			}
		case command.InsertNewLine:
			query := ctl.CommitSearch()
			if query != "" {
				a.lastQuery = query
				if !a.searchBar.Matched() {
					a.message.ShowError(fmt.Sprintf("pattern not found: %s", query))
				}
			}
			a.view.SetQuery(query)
			a.leaveSearch()
		}
	case command.Move:
		query := a.searchBar.Text()
		switch c {
		case command.Down:
			a.searchBar.SetMatched(ctl.SearchNext(query))
		case command.Up:
			a.searchBar.SetMatched(ctl.SearchPrev(query))
		}
	case command.System:
		if c.Op == command.Dismiss {
			ctl.DismissSearch()
			a.view.SetQuery("")
			a.leaveSearch()
		}
	}
}
