package command

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUnitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain service", "cron.service", false},
		{"template instance", "getty@tty1.service", false},
		{"escaped path", `dev-disk-by\x2duuid.device`, false},
		{"colon", "systemd-fsck@dev-disk:1.service", false},
		{"empty name", "", true},
		{"leading dash", "--now", true},
		{"shell metacharacter", "cron.service;rm", true},
		{"whitespace", "cron service", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUnitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateUnitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVerb(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"start", "start", false},
		{"hyphenated", "try-restart", false},
		{"empty", "", true},
		{"uppercase", "Start", true},
		{"option", "--force", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateVerb(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateVerb(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExecutable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare name", "systemctl", false},
		{"absolute path", "/usr/bin/systemctl", false},
		{"empty", "", true},
		{"traversal", "../bin/sh", true},
		{"shell syntax", "sudo;id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateExecutable(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateExecutable(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSafeBuilderValidate(t *testing.T) {
	sb := NewSafeBuilder()

	assert.NoError(t, sb.Validate("unitName", "sshd.service"))
	assert.Error(t, sb.Validate("unitName", "-x"))
	assert.Error(t, sb.Validate("unknown", "value"))
}

func TestBuild(t *testing.T) {
	sb := NewSafeBuilder()
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		_, err := sb.Build(ctx, "")
		assert.Error(t, err)
	})

	t.Run("NUL in argument", func(t *testing.T) {
		_, err := sb.Build(ctx, "systemctl", "start", "a\x00b")
		assert.Error(t, err)
	})

	t.Run("default timeout", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "systemctl", "list-units")
		require.NoError(t, err)
		defer cmd.Close()
		assert.Equal(t, DefaultTimeout, cmd.Timeout())
		assert.Equal(t, "systemctl list-units", cmd.String())
	})

	t.Run("timeout is clamped", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "systemctl")
		require.NoError(t, err)
		defer cmd.Close()
		cmd.WithTimeout(time.Hour)
		assert.Equal(t, MaxTimeout, cmd.Timeout())
	})

	t.Run("zero timeout has no deadline", func(t *testing.T) {
		cmd, err := NewSafeBuilder().WithDefaultTimeout(0).Build(ctx, "systemctl")
		require.NoError(t, err)
		defer cmd.Close()
		_, hasDeadline := cmd.ctx.Deadline()
		assert.False(t, hasDeadline)
	})
}

func TestRecordingExecutor(t *testing.T) {
	rec := &RecordingExecutor{Stub: []string{"echo", "ok"}}
	sb := NewSafeBuilderWithExecutor(rec)

	cmd, err := sb.Build(context.Background(), "systemctl", "start", "cron.service")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cmd.Run(nil, &out, &out))

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, []string{"systemctl", "start", "cron.service"}, rec.Calls[0])
	assert.Equal(t, "ok\n", out.String())
}
