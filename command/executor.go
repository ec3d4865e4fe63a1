package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. Tests swap it for one that records
// invocations or points at stub binaries.
type Executor interface {
	// Command creates a new exec.Cmd instance for the given command and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates a new context-aware exec.Cmd instance.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor is the production implementation of the Executor interface.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}

// RecordingExecutor records every command it is asked to create and rewrites
// it to run Stub instead. A nil Stub runs "true".
type RecordingExecutor struct {
	Calls [][]string
	Stub  []string
}

// Command records the invocation and returns the stub command.
func (e *RecordingExecutor) Command(name string, args ...string) *exec.Cmd {
	return e.CommandContext(context.Background(), name, args...)
}

// CommandContext records the invocation and returns the stub command.
func (e *RecordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.Calls = append(e.Calls, append([]string{name}, args...))
	stub := e.Stub
	if len(stub) == 0 {
		stub = []string{"true"}
	}
	return exec.CommandContext(ctx, stub[0], stub[1:]...)
}
