package parallels

import (
	"context"
	"fmt"

	"github.com/cocoonstack/prlctl/config"
	"github.com/cocoonstack/prlctl/executor"
	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/lock"
	"github.com/cocoonstack/prlctl/lock/flock"
)

const typ = "parallels"

// compile-time interface check.
var _ hypervisor.Hypervisor = (*Parallels)(nil)

// Parallels is the client facade. Every exported method runs under locker,
// so operations issued through one Parallels (or one lock file) never
// interleave their commands. Handles returned from it talk to prlctl
// directly and are not serialized.
type Parallels struct {
	conf   *config.Config
	r      *runner
	locker lock.Locker
}

// New creates a Parallels client running commands through exec.
// A nil exec means the real binaries via executor.Shell.
func New(conf *config.Config, exec executor.Executor) (*Parallels, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if exec == nil {
		exec = executor.NewShell(conf.CommandTimeout())
	}
	var locker lock.Locker = lock.NewLocal()
	if conf.LockFile != "" {
		locker = flock.New(conf.LockFile)
	}
	prlctl, prlsrvctl := conf.PrlctlBinary, conf.PrlsrvctlBinary
	if prlctl == "" {
		prlctl = "prlctl"
	}
	if prlsrvctl == "" {
		prlsrvctl = "prlsrvctl"
	}
	return &Parallels{
		conf:   conf,
		r:      &runner{exec: exec, prlctl: prlctl, prlsrvctl: prlsrvctl},
		locker: locker,
	}, nil
}

func (p *Parallels) Type() string { return typ }

// ListAll returns every registered VM, reconciled from the list and info
// listings. A VM status outside types.AllVMStatuses (for example "paused")
// fails the whole listing with a *DecodeError.
func (p *Parallels) ListAll(ctx context.Context) ([]*VM, error) {
	var vms []*VM
	err := lock.WithLock(ctx, p.locker, func() (err error) {
		vms, err = p.r.listAll(ctx)
		return err
	})
	return vms, err
}

// Lookup finds a VM by uuid, or failing that by name. A missing VM is
// (nil, nil).
func (p *Parallels) Lookup(ctx context.Context, handle string) (*VM, error) {
	var vm *VM
	err := lock.WithLock(ctx, p.locker, func() (err error) {
		vm, err = p.r.lookup(ctx, handle)
		return err
	})
	return vm, err
}

// require is lookup with a missing VM turned into hypervisor.ErrNotFound.
func (r *runner) require(ctx context.Context, handle string) (*VM, error) {
	vm, err := r.lookup(ctx, handle)
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, fmt.Errorf("%q: %w", handle, hypervisor.ErrNotFound)
	}
	return vm, nil
}

// with runs fn under the facade lock.
func (p *Parallels) with(ctx context.Context, fn func() error) error {
	return lock.WithLock(ctx, p.locker, fn)
}
