// Package command turns terminal events into the small closed set of
// commands the viewer understands.
package command

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/svcman/tui/keymap"
	"github.com/grovetools/svcman/tui/render"
)

// Command is one of Edit, Move or System.
type Command interface {
	isCommand()
}

// EditOp is a text entry operation.
type EditOp int

const (
	Insert EditOp = iota
	DeleteBackward
	DeleteForward
	InsertNewLine
)

func (op EditOp) String() string {
	switch op {
	case Insert:
		return "insert"
	case DeleteBackward:
		return "delete-backward"
	case DeleteForward:
		return "delete-forward"
	case InsertNewLine:
		return "newline"
	default:
		return "unknown"
	}
}

// Edit is a text entry command. Key is the key that produced it, which Normal
// mode matches against its bindings. Pasted is set for characters that
// arrived as part of a bracketed paste.
type Edit struct {
	Op     EditOp
	Char   rune
	Key    string
	Pasted bool
}

// Move is a cursor movement command.
type Move int

const (
	Up Move = iota
	Down
	PageUp
	PageDown
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case PageUp:
		return "page-up"
	case PageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// SystemOp is an application level command.
type SystemOp int

const (
	Quit SystemOp = iota
	Dismiss
	Resize
)

// System is an application level command. Size is set for Resize.
type System struct {
	Op   SystemOp
	Size render.Size
}

func (Edit) isCommand()   {}
func (Move) isCommand()   {}
func (System) isCommand() {}

// Classify maps a terminal event to commands. Unmapped events yield none.
// A paste yields one Insert per character.
func Classify(msg tea.Msg, km keymap.KeyMap) []Command {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return []Command{System{Op: Resize, Size: render.Size{Rows: msg.Height, Cols: msg.Width}}}
	case tea.KeyMsg:
		return classifyKey(msg, km)
	default:
		return nil
	}
}

func classifyKey(msg tea.KeyMsg, km keymap.KeyMap) []Command {
	keyStr := msg.String()

	switch {
	case key.Matches(msg, km.Confirm):
		return []Command{Edit{Op: InsertNewLine, Key: keyStr}}
	case key.Matches(msg, km.DeleteBackward):
		return []Command{Edit{Op: DeleteBackward, Key: keyStr}}
	case key.Matches(msg, km.DeleteForward):
		return []Command{Edit{Op: DeleteForward, Key: keyStr}}
	case key.Matches(msg, km.Up):
		return []Command{Up}
	case key.Matches(msg, km.Down):
		return []Command{Down}
	case key.Matches(msg, km.PageUp):
		return []Command{PageUp}
	case key.Matches(msg, km.PageDown):
		return []Command{PageDown}
	case key.Matches(msg, km.Quit):
		return []Command{System{Op: Quit}}
	case key.Matches(msg, km.Dismiss):
		return []Command{System{Op: Dismiss}}
	}

	if msg.Alt {
		return nil
	}

	switch msg.Type {
	case tea.KeySpace:
		return []Command{Edit{Op: Insert, Char: ' ', Key: " "}}
	case tea.KeyRunes:
		cmds := make([]Command, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			cmds = append(cmds, Edit{Op: Insert, Char: r, Key: string(r), Pasted: msg.Paste})
		}
		return cmds
	}
	return nil
}
