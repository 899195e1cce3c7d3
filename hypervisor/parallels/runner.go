package parallels

import (
	"context"
	"fmt"

	"github.com/cocoonstack/prlctl/executor"
)

// runner issues prlctl/prlsrvctl invocations through an Executor.
// It is stateless and shared by the facade and every phase handle.
type runner struct {
	exec      executor.Executor
	prlctl    string
	prlsrvctl string
}

func (r *runner) ctl(ctx context.Context, args ...string) (string, error) {
	return r.exec.Execute(ctx, append([]string{r.prlctl}, args...)...)
}

func (r *runner) srvctl(ctx context.Context, args ...string) (string, error) {
	return r.exec.Execute(ctx, append([]string{r.prlsrvctl}, args...)...)
}

// ctlDo is ctl for commands whose output is not needed.
func (r *runner) ctlDo(ctx context.Context, op, target string, args ...string) error {
	if _, err := r.ctl(ctx, args...); err != nil {
		return fmt.Errorf("%s %s: %w", op, target, err)
	}
	return nil
}
