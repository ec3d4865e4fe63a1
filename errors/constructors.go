package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *SvcError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *SvcError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ConfigValidation wraps a schema or semantic validation failure
func ConfigValidation(path string, err error) *SvcError {
	return Wrap(err, ErrCodeConfigValidation, "configuration failed validation").
		WithDetail("path", path)
}

// LoadFailed creates a unit listing failure error
func LoadFailed(cmd string, err error) *SvcError {
	return Wrap(err, ErrCodeLoadFailed, fmt.Sprintf("failed to list units: %s", cmd)).
		WithDetail("command", cmd)
}

// InvalidUnitName creates an error for a unit name that cannot be passed to systemctl
func InvalidUnitName(name string) *SvcError {
	return New(ErrCodeInvalidUnitName, fmt.Sprintf("invalid unit name %q", name)).
		WithDetail("unit", name)
}

// InvalidOperation creates an error for an unknown control operation
func InvalidOperation(op string) *SvcError {
	return New(ErrCodeInvalidOperation, fmt.Sprintf("unknown operation %q", op)).
		WithDetail("operation", op)
}

// CommandNotFound creates an error for a missing executable
func CommandNotFound(name string, err error) *SvcError {
	return Wrap(err, ErrCodeCommandNotFound, fmt.Sprintf("command not found: %s", name)).
		WithDetail("command", name)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *SvcError {
	if stderrors.Is(err, exec.ErrNotFound) {
		return CommandNotFound(strings.Fields(cmd + " ")[0], err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeCommandTimeout, fmt.Sprintf("command timed out: %s", cmd)).
			WithDetail("command", cmd)
	}

	svcErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		svcErr = svcErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return svcErr
}

// RenderFailed creates an error for a sink write that could not be applied
func RenderFailed(reason string) *SvcError {
	return New(ErrCodeRenderFailed, fmt.Sprintf("render failed: %s", reason))
}

// Canceled creates an error for a user-declined action
func Canceled(action string) *SvcError {
	return New(ErrCodeCanceled, fmt.Sprintf("%s canceled", action))
}
