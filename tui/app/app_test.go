package app

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/svcman/pkg/services"
	"github.com/grovetools/svcman/tui/command"
	"github.com/grovetools/svcman/tui/keymap"
	"github.com/grovetools/svcman/tui/render"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app     *App
	yanked  []string
	clipErr error
}

func collection(names ...string) *services.Collection {
	items := make([]services.Item, len(names))
	for i, name := range names {
		items[i] = services.Item{Name: name, Line: fmt.Sprintf("%-20s loaded active running", name)}
	}
	return services.NewCollection(items)
}

func numberedUnits(n int) *services.Collection {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("unit%02d.service", i)
	}
	return collection(names...)
}

func newHarness(t *testing.T, items *services.Collection) *harness {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := &harness{}
	h.app = New(items, Options{
		Size:   render.Size{Rows: 10, Cols: 60},
		Logger: logrus.NewEntry(logger),
		Clipboard: func(s string) error {
			if h.clipErr != nil {
				return h.clipErr
			}
			h.yanked = append(h.yanked, s)
			return nil
		},
	})
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		for _, cmd := range command.Classify(msg, h.app.KeyMap()) {
			h.app.Dispatch(cmd)
		}
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) location() int {
	return h.app.View().Controller().Location()
}

func names(c *services.Collection) []string {
	var out []string
	for _, item := range c.Items() {
		out = append(out, item.Name)
	}
	return out
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyQuit  = tea.KeyMsg{Type: tea.KeyCtrlQ}
)

func TestMultiplierScalesMovement(t *testing.T) {
	h := newHarness(t, numberedUnits(40))

	h.typeText("12")
	assert.Equal(t, 12, h.app.Multiplier())

	h.send(keyDown)
	assert.Equal(t, 12, h.location())
	assert.Equal(t, 0, h.app.Multiplier())

	h.typeText("3k")
	assert.Equal(t, 9, h.location())
	assert.Equal(t, 0, h.app.Multiplier())
}

func TestMultiplierIsCapped(t *testing.T) {
	h := newHarness(t, numberedUnits(3))
	h.typeText("123456")
	assert.Equal(t, MaxMultiplier, h.app.Multiplier())

	h.send(keyEsc)
	assert.Equal(t, 0, h.app.Multiplier())
}

func TestFilterMode(t *testing.T) {
	items := collection("alpha.service", "beta.service", "alphabet.service")
	h := newHarness(t, items)
	h.send(keyDown)

	h.typeText("i")
	require.Equal(t, Filter, h.app.Mode())
	assert.False(t, h.app.View().Selection())
	assert.Equal(t, 0, h.location())

	h.typeText("alpha")
	assert.Equal(t, []string{"alpha.service", "alphabet.service"}, names(items))

	h.send(keyDown)
	assert.Equal(t, 0, h.location(), "movement is ignored while filtering")

	h.send(keyBack, keyBack, keyBack, keyBack, keyBack)
	assert.Empty(t, h.app.FilterText())
	assert.Equal(t, 3, items.Height())

	h.typeText("b")
	assert.Equal(t, []string{"beta.service"}, names(items))

	h.send(keyEnter)
	assert.Equal(t, Normal, h.app.Mode())
	assert.True(t, h.app.View().Selection())
	assert.Equal(t, "b", items.FilterQuery())
	assert.False(t, h.app.Session().Terminating())
}

func TestFilterDismissKeepsFilter(t *testing.T) {
	items := collection("alpha.service", "beta.service")
	h := newHarness(t, items)

	h.typeText("Abe")
	h.send(keyEsc)
	assert.Equal(t, Normal, h.app.Mode())
	assert.Equal(t, []string{"beta.service"}, names(items))
}

func TestSearchDismissRestoresPosition(t *testing.T) {
	h := newHarness(t, numberedUnits(40))
	h.typeText("3j")
	require.Equal(t, 3, h.location())

	h.typeText("/unit25")
	require.Equal(t, Search, h.app.Mode())
	assert.Equal(t, 25, h.location())
	assert.Equal(t, "unit25", h.app.View().Query())

	h.send(keyEsc)
	assert.Equal(t, Normal, h.app.Mode())
	assert.Equal(t, 3, h.location())
	assert.Empty(t, h.app.View().Query())
	assert.Empty(t, h.app.LastQuery())
}

func TestSearchCommitAndRepeat(t *testing.T) {
	h := newHarness(t, numberedUnits(40))

	h.typeText("/unit1")
	assert.Equal(t, 10, h.location())
	h.send(keyDown)
	assert.Equal(t, 11, h.location())
	h.send(keyUp, keyUp)
	assert.Equal(t, 19, h.location())

	h.send(keyEnter)
	assert.Equal(t, Normal, h.app.Mode())
	assert.Equal(t, 19, h.location())
	assert.Equal(t, "unit1", h.app.LastQuery())
	assert.Empty(t, h.app.SearchText())

	h.typeText("n")
	assert.Equal(t, 10, h.location())
	h.typeText("N")
	assert.Equal(t, 19, h.location())
	h.typeText("2n")
	assert.Equal(t, 11, h.location())
}

func TestSearchMissReportsMessage(t *testing.T) {
	h := newHarness(t, numberedUnits(5))

	h.typeText("n")
	assert.Equal(t, "no previous search", h.app.Message())

	h.typeText("/nothing")
	assert.Equal(t, 0, h.location())
	h.send(keyEnter)
	assert.Equal(t, "pattern not found: nothing", h.app.Message())
}

func TestOperationsTerminateWithPending(t *testing.T) {
	tests := []struct {
		keys string
		msg  tea.Msg
		want services.Kind
	}{
		{keys: "s", want: services.Start},
		{keys: "x", want: services.Stop},
		{keys: "r", want: services.Reload},
		{keys: "R", want: services.Restart},
		{keys: "e", want: services.Enable},
		{keys: "d", want: services.Disable},
		{msg: keyEnter, want: services.Status},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			h := newHarness(t, collection("a.service", "b.service"))
			h.send(keyDown)
			if tt.msg != nil {
				h.send(tt.msg)
			} else {
				h.typeText(tt.keys)
			}

			session := h.app.Session()
			require.True(t, session.Terminating())
			op, ok := session.Pending()
			require.True(t, ok)
			assert.Equal(t, services.Operation{Kind: tt.want, Name: "b.service"}, op)
		})
	}
}

func TestOperationOnEmptyCollection(t *testing.T) {
	h := newHarness(t, collection())
	h.typeText("s")
	assert.False(t, h.app.Session().Terminating())
	assert.Equal(t, "no unit selected", h.app.Message())
}

func TestQuit(t *testing.T) {
	h := newHarness(t, collection("a.service"))
	h.typeText("i")
	h.send(keyQuit)

	require.True(t, h.app.Session().Terminating())
	_, ok := h.app.Session().Pending()
	assert.False(t, ok)

	h = newHarness(t, collection("a.service"))
	h.typeText("q")
	assert.True(t, h.app.Session().Terminating())
}

func TestTopBottomAndGoToLine(t *testing.T) {
	h := newHarness(t, numberedUnits(30))

	h.typeText("G")
	assert.Equal(t, 29, h.location())
	h.typeText("gg")
	assert.Equal(t, 0, h.location())
	h.typeText("7G")
	assert.Equal(t, 6, h.location())
	h.typeText("gj")
	assert.Equal(t, 7, h.location())
	h.typeText("12gg")
	assert.Equal(t, 11, h.location())
}

func TestPastedTextIgnoredInNormalMode(t *testing.T) {
	h := newHarness(t, numberedUnits(5))
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3jsq"), Paste: true})

	assert.Equal(t, 0, h.location())
	assert.False(t, h.app.Session().Terminating())
}

func TestYank(t *testing.T) {
	h := newHarness(t, collection("a.service", "b.service"))
	h.typeText("jy")
	assert.Equal(t, []string{"b.service"}, h.yanked)
	assert.Equal(t, "yanked b.service", h.app.Message())

	h.clipErr = fmt.Errorf("no display")
	h.typeText("y")
	assert.Contains(t, h.app.Message(), "clipboard unavailable")
}

func TestHelpMessage(t *testing.T) {
	h := newHarness(t, collection("a.service"))
	h.typeText("?")
	assert.Contains(t, h.app.Message(), "i filter")
	assert.Contains(t, h.app.Message(), "q quit")
}

func TestRenderLayout(t *testing.T) {
	h := newHarness(t, collection("cron.service", "ssh.service"))
	require.NoError(t, h.app.Render())

	frame := h.app.Frame()
	assert.Equal(t, ">", strings.TrimSpace(frame.Row(0)))
	assert.True(t, strings.HasPrefix(frame.Row(1), "cron.service"))
	assert.Equal(t, "~", strings.TrimSpace(frame.Row(3)))
	assert.Contains(t, frame.Row(8), "NORMAL")
	assert.Contains(t, frame.Row(8), "1/2")
	assert.Contains(t, frame.Row(9), "filter: i | search: /")
	_, visible := frame.Caret()
	assert.False(t, visible)

	h.typeText("iss")
	require.NoError(t, h.app.Render())
	assert.Equal(t, "> ss", strings.TrimSpace(frame.Row(0)))
	assert.True(t, strings.HasPrefix(frame.Row(1), "ssh.service"))
	assert.Contains(t, frame.Row(8), "FILTER")
	assert.Contains(t, frame.Row(8), "[filter: ss]")
	pos, visible := frame.Caret()
	assert.True(t, visible)
	assert.Equal(t, render.Position{Row: 0, Col: 4}, pos)

	h.send(keyEnter)
	h.typeText("/ssh")
	require.NoError(t, h.app.Render())
	assert.Equal(t, "/ssh", strings.TrimSpace(frame.Row(9)))
	pos, _ = frame.Caret()
	assert.Equal(t, render.Position{Row: 9, Col: 4}, pos)

	h.send(keyEsc)
	require.NoError(t, h.app.Render())
	assert.Contains(t, frame.Row(9), "filter: i | search: /")
}

func TestResize(t *testing.T) {
	h := newHarness(t, numberedUnits(20))
	h.send(tea.WindowSizeMsg{Width: 30, Height: 5})

	assert.Equal(t, render.Size{Rows: 5, Cols: 30}, h.app.Frame().Size())
	assert.Equal(t, 2, h.app.View().Controller().Height())

	h.typeText("5j")
	ctl := h.app.View().Controller()
	assert.Equal(t, 5, ctl.Location())
	assert.Equal(t, 4, ctl.Offset())

	h.send(tea.WindowSizeMsg{Width: 30, Height: 2})
	require.NoError(t, h.app.Render())
	assert.Equal(t, 0, ctl.Height())
}

func TestModelQuitsWhenTerminating(t *testing.T) {
	h := newHarness(t, collection("a.service"))
	model := NewModel(h.app)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Nil(t, cmd)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.NotEmpty(t, model.View())
}

func TestSequenceBindingsAreTop(t *testing.T) {
	km := keymap.Default()
	require.Len(t, km.SequenceBindings(), 1)
	assert.True(t, keymap.Matches("gg", km.SequenceBindings()[0]))
}

func TestMessageExpires(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	a := New(collection(), Options{
		Size:   render.Size{Rows: 6, Cols: 40},
		Logger: logrus.NewEntry(logger),
		Now:    func() time.Time { return now },
	})
	a.Dispatch(command.Edit{Op: command.Insert, Char: 's', Key: "s"})
	require.NoError(t, a.Render())
	assert.Equal(t, "no unit selected", strings.TrimSpace(a.Frame().Row(5)))

	now = now.Add(4 * time.Second)
	require.NoError(t, a.Render())
	assert.Contains(t, a.Frame().Row(5), "keys: ? | quit: q")
}
