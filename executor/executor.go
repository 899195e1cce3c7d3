package executor

import (
	"context"
	"fmt"
	"strings"
)

// Executor runs an external program and returns its standard output.
// Implementations own timeouts and cancellation; callers only pass ctx.
type Executor interface {
	Execute(ctx context.Context, argv ...string) (string, error)
}

// ExecutionError is returned when a program could not be started or
// exited non-zero.
type ExecutionError struct {
	Argv     []string
	ExitCode int // -1 when the process never ran
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("exec %q", strings.Join(e.Argv, " "))
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(": exit %d", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// CommandLine renders argv the way a shell user would type it.
// Used for logging and tests; arguments are not quoted.
func CommandLine(argv []string) string {
	return strings.Join(argv, " ")
}
