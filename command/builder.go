package command

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 30 * time.Second

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

var (
	unitNamePattern   = regexp.MustCompile(`^[A-Za-z0-9:_.@\\-]+$`)
	verbPattern       = regexp.MustCompile(`^[a-z][a-z-]*$`)
	executablePattern = regexp.MustCompile(`^[A-Za-z0-9/_.+-]+$`)
)

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// WithDefaultTimeout changes the timeout applied by Build. Zero disables it.
func (sb *SafeBuilder) WithDefaultTimeout(timeout time.Duration) *SafeBuilder {
	sb.defaultTimeout = clampTimeout(timeout)
	return sb
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"unitName":   validateUnitName,
		"verb":       validateVerb,
		"executable": validateExecutable,
	}
}

// validateUnitName ensures a unit name can be passed as a single systemctl argument
func validateUnitName(name string) error {
	if name == "" {
		return fmt.Errorf("unit name cannot be empty")
	}

	// A leading dash would be parsed as an option.
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("invalid unit name: %s (cannot start with '-')", name)
	}

	if !unitNamePattern.MatchString(name) {
		return fmt.Errorf("invalid unit name: %s", name)
	}

	if len(name) > 255 {
		return fmt.Errorf("unit name too long: %s (max 255 characters)", name)
	}

	return nil
}

// validateVerb ensures a systemctl verb is a plain lowercase word
func validateVerb(verb string) error {
	if verb == "" {
		return fmt.Errorf("verb cannot be empty")
	}
	if !verbPattern.MatchString(verb) {
		return fmt.Errorf("invalid verb: %s", verb)
	}
	return nil
}

// validateExecutable ensures an executable name or path carries no shell syntax
func validateExecutable(name string) error {
	if name == "" {
		return fmt.Errorf("executable cannot be empty")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("executable cannot contain '..'")
	}
	if !executablePattern.MatchString(name) {
		return fmt.Errorf("invalid executable: %s", name)
	}
	return nil
}

func clampTimeout(timeout time.Duration) time.Duration {
	if timeout < 0 {
		return 0
	}
	if timeout > MaxTimeout {
		return MaxTimeout
	}
	return timeout
}

// Command represents a safe command configuration
type Command struct {
	parent   context.Context
	ctx      context.Context
	cancel   context.CancelFunc
	name     string
	args     []string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation. The returned command holds a
// context derived from ctx; Run and Output release it, callers using Exec
// directly must call Close.
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if err := validateExecutable(name); err != nil {
		return nil, err
	}
	for _, arg := range args {
		if strings.ContainsRune(arg, 0) {
			return nil, fmt.Errorf("argument contains NUL byte: %q", arg)
		}
	}

	c := &Command{
		parent:   ctx,
		name:     name,
		args:     append([]string(nil), args...),
		executor: sb.executor,
	}
	c.applyTimeout(sb.defaultTimeout)
	return c, nil
}

func (c *Command) applyTimeout(timeout time.Duration) {
	if c.cancel != nil {
		c.cancel()
	}
	c.timeout = clampTimeout(timeout)
	if c.timeout == 0 {
		c.ctx, c.cancel = context.WithCancel(c.parent)
		return
	}
	c.ctx, c.cancel = context.WithTimeout(c.parent, c.timeout)
}

// WithTimeout sets a custom timeout for the command. Zero means no deadline.
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	c.applyTimeout(timeout)
	return c
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// String renders the command line for logs and error messages
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Timeout returns the effective deadline applied to the command, zero if none
func (c *Command) Timeout() time.Duration {
	return c.timeout
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
}

// Output runs the command and returns its standard output
func (c *Command) Output() ([]byte, error) {
	defer c.Close()
	return c.Exec().Output()
}

// Run runs the command attached to the given streams
func (c *Command) Run(stdin io.Reader, stdout, stderr io.Writer) error {
	defer c.Close()
	cmd := c.Exec()
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Close releases the command's context
func (c *Command) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}
