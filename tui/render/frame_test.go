package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/svcman/errors"
)

func TestFrameWriteRow(t *testing.T) {
	f := NewFrame(Size{Rows: 2, Cols: 8}, nil)

	require.NoError(t, f.WriteRow(0, "hello"))
	require.NoError(t, f.WriteRow(1, "a much longer line"))

	assert.Equal(t, "hello   ", f.Row(0))
	assert.Equal(t, "a much l", f.Row(1))
}

func TestFrameWriteRowClearsPreviousContent(t *testing.T) {
	f := NewFrame(Size{Rows: 1, Cols: 6}, nil)

	require.NoError(t, f.WriteRow(0, "abcdef"))
	require.NoError(t, f.WriteRow(0, "xy"))

	assert.Equal(t, "xy    ", f.Row(0))
}

func TestFrameWriteSpans(t *testing.T) {
	f := NewFrame(Size{Rows: 1, Cols: 10}, nil)

	err := f.WriteSpans(0, []Span{
		{Text: "cron", Style: StyleSelectedMatch},
		{Text: ".service", Style: StyleSelected},
	})
	require.NoError(t, err)

	assert.Equal(t, "cron.servi", f.Row(0))
}

func TestFrameRejectsOutOfRangeWrites(t *testing.T) {
	f := NewFrame(Size{Rows: 2, Cols: 4}, nil)

	err := f.WriteRow(2, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRenderFailed))

	assert.Error(t, f.WriteRow(-1, "x"))
	assert.Error(t, f.MoveCaret(Position{Row: 5, Col: 0}))
	assert.NoError(t, f.MoveCaret(Position{Row: 1, Col: 4}))
}

func TestFrameFlush(t *testing.T) {
	f := NewFrame(Size{Rows: 2, Cols: 3}, nil)
	require.NoError(t, f.WriteRow(0, "abc"))
	require.NoError(t, f.WriteRow(1, "def"))
	require.NoError(t, f.MoveCaret(Position{Row: 1, Col: 1}))
	f.ShowCaret()

	require.NoError(t, f.Flush())

	lines := strings.Split(f.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abc", lines[0])
	assert.Contains(t, lines[1], "d")
	assert.Contains(t, lines[1], "f")
	assert.Equal(t, 1, f.Flushes())

	pos, visible := f.Caret()
	assert.True(t, visible)
	assert.Equal(t, Position{Row: 1, Col: 1}, pos)
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(Size{Rows: 1, Cols: 2}, nil)
	f.Resize(Size{Rows: 3, Cols: 4})

	assert.Equal(t, Size{Rows: 3, Cols: 4}, f.Size())
	assert.Equal(t, "    ", f.Row(2))

	f.Resize(Size{Rows: -1, Cols: -1})
	assert.Equal(t, Size{}, f.Size())
}
