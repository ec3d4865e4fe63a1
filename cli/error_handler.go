package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/tui/theme"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitConfig   = 2
	ExitLoad     = 3
	ExitCommand  = 4
	ExitCanceled = 130
)

// ErrorHandler prints user-friendly error messages.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{Verbose: verbose, Out: os.Stderr}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		return ExitConfig
	case errors.ErrCodeLoadFailed:
		return ExitLoad
	case errors.ErrCodeCommandFailed, errors.ErrCodeCommandNotFound, errors.ErrCodeCommandTimeout,
		errors.ErrCodePermissionDenied:
		return ExitCommand
	case errors.ErrCodeCanceled:
		return ExitCanceled
	default:
		return ExitError
	}
}

// Handle prints err and returns the exit code for it.
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return ExitOK
	}
	t := theme.DefaultTheme
	prefix := t.Error.Render("Error:")

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		fmt.Fprintln(h.Out, t.Muted.Render("Create svcman.yml or pass --config. Run 'svcman config schema' for the format."))
	case errors.ErrCodeConfigValidation, errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "%s invalid configuration: %v\n", prefix, err)
	case errors.ErrCodeLoadFailed:
		fmt.Fprintf(h.Out, "%s could not list units: %v\n", prefix, err)
		fmt.Fprintln(h.Out, t.Muted.Render("Check that systemctl is available or set source.command."))
	case errors.ErrCodeCommandNotFound:
		fmt.Fprintf(h.Out, "%s required command not found: %v\n", prefix, err)
	case errors.ErrCodeCanceled:
		fmt.Fprintln(h.Out, t.Muted.Render("Canceled."))
	default:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
	}

	if h.Verbose {
		if svcErr, ok := err.(*errors.SvcError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", svcErr.ToJSON())
		}
	}
	return ExitCode(err)
}
