package services

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grovetools/svcman/command"
	"github.com/grovetools/svcman/errors"
	"github.com/grovetools/svcman/logging"
)

// Kind is a unit control operation.
type Kind int

const (
	Start Kind = iota
	Stop
	Reload
	Restart
	Enable
	Disable
	Status
)

var kindNames = map[Kind]string{
	Start:   "start",
	Stop:    "stop",
	Reload:  "reload",
	Restart: "restart",
	Enable:  "enable",
	Disable: "disable",
	Status:  "status",
}

// String returns the systemctl verb for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Privileged reports whether the operation needs elevated rights.
func (k Kind) Privileged() bool {
	return k != Status
}

// ParseKind resolves a systemctl verb.
func ParseKind(verb string) (Kind, error) {
	for k, name := range kindNames {
		if name == verb {
			return k, nil
		}
	}
	return 0, errors.InvalidOperation(verb)
}

// Operation is a control action on one unit.
type Operation struct {
	Kind Kind
	Name string
}

func (o Operation) String() string {
	return o.Kind.String() + " " + o.Name
}

// Executor runs a control operation to completion.
type Executor interface {
	Execute(ctx context.Context, op Operation) error
}

// ExecutorOptions configures a SystemctlExecutor.
type ExecutorOptions struct {
	// Command is the control binary, systemctl when empty.
	Command string
	// Privilege is the command prefix for privileged operations, e.g. ["sudo"].
	Privilege []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// SystemctlExecutor runs operations through systemctl, attached to the
// terminal so that privilege prompts and status output reach the user.
type SystemctlExecutor struct {
	builder   *command.SafeBuilder
	command   string
	privilege []string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// NewSystemctlExecutor returns an executor. Operations run without a timeout.
func NewSystemctlExecutor(builder *command.SafeBuilder, opts ExecutorOptions) *SystemctlExecutor {
	e := &SystemctlExecutor{
		builder:   builder,
		command:   opts.Command,
		privilege: opts.Privilege,
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
	}
	if e.command == "" {
		e.command = "systemctl"
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Argv returns the full command line op would run.
func (e *SystemctlExecutor) Argv(op Operation) []string {
	argv := []string{e.command, op.Kind.String()}
	if op.Kind == Status {
		argv = append(argv, "--no-pager")
	}
	argv = append(argv, op.Name)
	if op.Kind.Privileged() && len(e.privilege) > 0 {
		argv = append(append([]string(nil), e.privilege...), argv...)
	}
	return argv
}

// Execute validates op and runs it. Output is not inspected; only the exit
// status decides success.
func (e *SystemctlExecutor) Execute(ctx context.Context, op Operation) error {
	log := logging.NewLogger("services")

	if _, ok := kindNames[op.Kind]; !ok {
		return errors.InvalidOperation(op.Kind.String())
	}
	if err := e.builder.Validate("unitName", op.Name); err != nil {
		return errors.InvalidUnitName(op.Name).WithDetail("reason", err.Error())
	}

	argv := e.Argv(op)
	cmd, err := e.builder.Build(ctx, argv[0], argv[1:]...)
	if err != nil {
		return errors.CommandFailed(strings.Join(argv, " "), err)
	}
	cmd.WithTimeout(0)

	log.WithField("command", cmd.String()).Info("Running unit operation")
	if err := cmd.Run(e.stdin, e.stdout, e.stderr); err != nil {
		log.WithError(err).WithField("command", cmd.String()).Warn("Unit operation failed")
		return errors.CommandFailed(cmd.String(), err).
			WithDetail("operation", op.Kind.String()).
			WithDetail("unit", op.Name)
	}
	return nil
}
