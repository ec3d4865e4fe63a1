package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/svcman/config"
	"github.com/grovetools/svcman/pkg/paths"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// activeConfig is the configuration loggers are built from. Nil means
	// discover svcman.yml on first use.
	activeConfig *config.Config
)

// SetConfig makes later NewLogger calls use cfg and drops cached loggers.
func SetConfig(cfg *config.Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	activeConfig = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger returns the logger for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	cfg := activeConfig
	if cfg == nil {
		if loaded, err := config.LoadDefault(); err == nil {
			cfg = loaded
		}
	}

	var logCfg Config
	if cfg != nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := build(component, logCfg).WithField("component", component)
	loggers[component] = entry
	return entry
}

func build(component string, logCfg Config) *logrus.Logger {
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("SVCMAN_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("SVCMAN_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer
	if w := openFileSink(component, logCfg.File); w != nil {
		writers = append(writers, w)
	}
	if shouldLogToStderr(logCfg.Format.StructuredToStderr) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}
	return logger
}

func openFileSink(component string, fileCfg FileSinkConfig) io.Writer {
	if fileCfg.Disabled {
		return nil
	}

	logFilePath := expandPath(fileCfg.Path)
	if logFilePath == "" {
		logFilePath = filepath.Join(paths.LogsDir(), fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02")))
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		return nil
	}
	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return file
}

// shouldLogToStderr decides the stderr sink. In auto mode structured logs
// reach stderr only when it is not a terminal, since the TUI draws there.
func shouldLogToStderr(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stderr.Fd()
		return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}

// expandPath expands a leading tilde.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
