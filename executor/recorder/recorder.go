// Package recorder provides a scripted Executor that records every command
// line it is asked to run. Tests across the module use it in place of the
// real prlctl binaries.
package recorder

import (
	"context"
	"fmt"
	"sync"

	"github.com/cocoonstack/prlctl/executor"
)

// compile-time interface check.
var _ executor.Executor = (*Recorder)(nil)

type response struct {
	out string
	err error
}

// Recorder answers commands from a table keyed by the joined command line.
//
// With an empty table every command gets the default output. Once any
// response is registered, unknown commands fail, which keeps tests honest
// about the exact argv being issued. Registering the same command line more
// than once queues the answers; the last one repeats.
type Recorder struct {
	mu        sync.Mutex
	commands  []string
	responses map[string][]response
	fallback  string
}

// New returns a Recorder that answers every command with "".
func New() *Recorder {
	return &Recorder{responses: map[string][]response{}}
}

// WithDefault returns a Recorder that answers every command with out.
func WithDefault(out string) *Recorder {
	r := New()
	r.fallback = out
	return r
}

// On registers out as the answer to cmdline.
func (r *Recorder) On(cmdline, out string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = append(r.responses[cmdline], response{out: out})
	return r
}

// Fail makes cmdline fail with an ExecutionError wrapping err.
func (r *Recorder) Fail(cmdline string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = append(r.responses[cmdline], response{err: err})
	return r
}

// Execute implements executor.Executor.
func (r *Recorder) Execute(_ context.Context, argv ...string) (string, error) {
	cmdline := executor.CommandLine(argv)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmdline)

	if len(r.responses) == 0 {
		return r.fallback, nil
	}
	queue, ok := r.responses[cmdline]
	if !ok {
		return "", &executor.ExecutionError{
			Argv:     argv,
			ExitCode: -1,
			Err:      fmt.Errorf("no registered response for %q", cmdline),
		}
	}
	resp := queue[0]
	if len(queue) > 1 {
		r.responses[cmdline] = queue[1:]
	}
	if resp.err != nil {
		return "", &executor.ExecutionError{Argv: argv, ExitCode: 1, Err: resp.err}
	}
	return resp.out, nil
}

// Commands returns every command line executed so far, in order.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.commands...)
}

// First returns the first executed command line, or "".
func (r *Recorder) First() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return ""
	}
	return r.commands[0]
}

// Last returns the most recent command line, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return ""
	}
	return r.commands[len(r.commands)-1]
}
