package app

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/logging"
	"github.com/grovetools/svcman/tui/command"
)

// Model adapts an App to bubbletea. Each key or resize event is classified
// into commands and dispatched; the frame is rendered after every update.
type Model struct {
	app *App
}

// NewModel wraps a.
func NewModel(a *App) Model {
	return Model{app: a}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	for _, cmd := range command.Classify(msg, m.app.keys) {
		m.app.Dispatch(cmd)
		if m.app.session.Terminating() {
			break
		}
	}
	if m.app.session.Terminating() {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if err := m.app.Render(); err != nil {
		m.app.log.WithError(err).Warn("Frame flush failed")
	}
	return m.app.frame.String()
}

// Run drives a on the terminal until it terminates, and returns the session
// so the caller can run the pending operation after the screen is restored.
// Log output to stderr is muted while the alternate screen is active.
func Run(ctx context.Context, a *App, opts ...tea.ProgramOption) (Session, error) {
	previous := logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(previous)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(NewModel(a), options...)
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return Session{}, errors.Canceled("interactive session")
		}
		return Session{}, errors.Wrap(err, errors.ErrCodeInternal, "terminal session failed")
	}
	return a.Session(), nil
}
