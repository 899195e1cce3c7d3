package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/projecteru2/core/log"
)

// compile-time interface check.
var _ Executor = (*Shell)(nil)

// Shell runs programs directly via os/exec. No shell is involved, so
// argv elements are passed to the program verbatim.
type Shell struct {
	// Timeout bounds every invocation. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// NewShell creates a Shell executor with the given per-command timeout.
func NewShell(timeout time.Duration) *Shell {
	return &Shell{Timeout: timeout}
}

// Execute runs argv[0] with argv[1:] and returns stdout with trailing
// whitespace trimmed.
func (s *Shell) Execute(ctx context.Context, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", &ExecutionError{ExitCode: -1, Err: errors.New("empty command")}
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	log.WithFunc("executor.Execute").Infof(ctx, "run: %s", CommandLine(argv))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is built by this module
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		execErr := &ExecutionError{
			Argv:     argv,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			execErr.Err = fmt.Errorf("%w (%w)", err, ctxErr)
		}
		return "", execErr
	}
	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}
