package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/svcman/config"
)

func TestNewLoggerCachesPerComponent(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	SetConfig(&config.Config{})
	defer SetConfig(nil)

	a := NewLogger("viewer")
	b := NewLogger("viewer")
	c := NewLogger("services")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "viewer", a.Data["component"])
}

func TestNewLoggerUsesConfig(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "svcman.log")
	cfg := &config.Config{Extensions: map[string]interface{}{
		"logging": map[string]interface{}{
			"level": "debug",
			"file":  map[string]interface{}{"path": logPath},
			"format": map[string]interface{}{
				"preset":               "simple",
				"structured_to_stderr": "never",
			},
		},
	}}
	SetConfig(cfg)
	defer SetConfig(nil)

	log := NewLogger("config-test")
	assert.Equal(t, logrus.DebugLevel, log.Logger.GetLevel())

	log.WithField("unit", "cron.service").Debug("hello")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "[DEBUG] hello unit=cron.service\n", string(data))
}

func TestEnvOverridesLevel(t *testing.T) {
	t.Setenv("SVCMAN_LOG_LEVEL", "error")
	SetConfig(&config.Config{Extensions: map[string]interface{}{
		"logging": map[string]interface{}{"level": "debug", "file": map[string]interface{}{"disabled": true}},
	}})
	defer SetConfig(nil)

	assert.Equal(t, logrus.ErrorLevel, NewLogger("env-test").Logger.GetLevel())
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	entry := &logrus.Entry{
		Time:    time.Now(),
		Level:   logrus.WarnLevel,
		Message: "Unit operation failed",
		Data:    logrus.Fields{"component": "services", "b": 2, "a": 1},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.True(t, strings.HasPrefix(line, "[WARN] ["))
	assert.Contains(t, line, "services")
	assert.True(t, strings.HasSuffix(line, "Unit operation failed a=1 b=2\n"))
}

func TestShouldLogToStderr(t *testing.T) {
	assert.True(t, shouldLogToStderr("always"))
	assert.False(t, shouldLogToStderr("never"))
}

func TestSetGlobalOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := SetGlobalOutput(&buf)
	defer SetGlobalOutput(prev)

	_, err := GetGlobalOutput().Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", buf.String())
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("restarted cron.service")
	p.ErrorPretty("stop failed", assert.AnError)
	p.Command([]string{"sudo", "systemctl", "stop", "cron.service"})

	out := buf.String()
	assert.Contains(t, out, "restarted cron.service")
	assert.Contains(t, out, assert.AnError.Error())
	assert.Contains(t, out, "sudo systemctl stop cron.service")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs"), expandPath("~/logs"))
	assert.Equal(t, "/tmp/x", expandPath("/tmp/x"))
}
