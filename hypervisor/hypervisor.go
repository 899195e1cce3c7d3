package hypervisor

import (
	"context"
	"errors"

	"github.com/cocoonstack/prlctl/types"
)

var (
	ErrNotFound   = errors.New("VM not found")
	ErrWrongPhase = errors.New("operation not valid in the VM's current phase")
)

// Hypervisor is the batch-oriented VM surface used by the CLI.
// Each call re-enumerates the VMs; nothing is cached between calls.
type Hypervisor interface {
	Type() string

	List(context.Context) ([]*types.VM, error)
	Inspect(ctx context.Context, ref string) (*types.VM, error)
	Start(ctx context.Context, refs []string, wait bool) ([]string, error)
	Stop(ctx context.Context, refs []string, fast bool) ([]string, error)
	Delete(ctx context.Context, refs []string) ([]string, error)
	Unregister(ctx context.Context, refs []string) ([]string, error)
}
