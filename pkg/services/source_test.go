package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/svcman/command"
	"github.com/grovetools/svcman/errors"
)

func TestLoad(t *testing.T) {
	src := StaticSource{
		"cron.service loaded active running Cron",
		"",
		"   ",
		"snap-core.service loaded active exited Snap",
		"ssh.service loaded active running OpenSSH",
	}

	t.Run("parses and pads", func(t *testing.T) {
		c, err := Load(context.Background(), src, LoadOptions{Width: 50})
		require.NoError(t, err)
		require.Equal(t, 3, c.Height())

		first, _ := c.At(0)
		assert.Equal(t, "cron.service", first.Name)
		assert.Len(t, first.Line, 50)
	})

	t.Run("hides patterns", func(t *testing.T) {
		c, err := Load(context.Background(), src, LoadOptions{Hide: []string{"snap-*"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"cron.service", "ssh.service"}, names(c))
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := Load(context.Background(), src, LoadOptions{Hide: []string{"["}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})

	t.Run("empty source", func(t *testing.T) {
		c, err := Load(context.Background(), StaticSource(nil), LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, c.Height())
	})
}

func TestDefaultListArgs(t *testing.T) {
	args := DefaultListArgs("")
	assert.Equal(t, "list-units", args[0])
	assert.Contains(t, args, "--type=service")
	assert.Contains(t, args, "--plain")

	assert.Contains(t, DefaultListArgs("socket"), "--type=socket")
}

func TestSystemctlSource(t *testing.T) {
	rec := &command.RecordingExecutor{Stub: []string{"printf", "a.service x y z\\nb.service x y z\\n"}}
	src := NewSystemctlSource(command.NewSafeBuilderWithExecutor(rec), "", nil)

	lines, err := src.Lines(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.service x y z", "b.service x y z"}, lines)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, append([]string{"systemctl"}, DefaultListArgs("service")...), rec.Calls[0])
}

func TestSystemctlSourceFailure(t *testing.T) {
	rec := &command.RecordingExecutor{Stub: []string{"false"}}
	src := NewSystemctlSource(command.NewSafeBuilderWithExecutor(rec), "systemctl", []string{"list-units"})

	_, err := src.Lines(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeLoadFailed))
	assert.True(t, errors.Is(err, errors.ErrCodeCommandFailed))
}
