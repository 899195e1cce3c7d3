package parallels

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/projecteru2/core/log"
	"golang.org/x/sync/errgroup"

	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/types"
)

// List returns every VM as a plain record.
func (p *Parallels) List(ctx context.Context) ([]*types.VM, error) {
	vms, err := p.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*types.VM, len(vms))
	for i, vm := range vms {
		result[i] = &vm.VM
	}
	return result, nil
}

// Inspect returns the VM named by ref, or hypervisor.ErrNotFound.
func (p *Parallels) Inspect(ctx context.Context, ref string) (*types.VM, error) {
	var result *types.VM
	err := p.with(ctx, func() error {
		vm, err := p.r.require(ctx, ref)
		if err != nil {
			return err
		}
		result = &vm.VM
		return nil
	})
	return result, err
}

// Start boots every stopped VM in refs.
func (p *Parallels) Start(ctx context.Context, refs []string, wait bool) ([]string, error) {
	return p.forEachVM(ctx, refs, "Start", func(ctx context.Context, vm *VM) error {
		h, ok := vm.AsStoppedVM()
		if !ok {
			return fmt.Errorf("VM is %s: %w", vm.Status, hypervisor.ErrWrongPhase)
		}
		return h.Start(ctx, wait)
	})
}

// Stop shuts down every running VM in refs.
func (p *Parallels) Stop(ctx context.Context, refs []string, fast bool) ([]string, error) {
	return p.forEachVM(ctx, refs, "Stop", func(ctx context.Context, vm *VM) error {
		h, ok := vm.AsRunningVM()
		if !ok {
			return fmt.Errorf("VM is %s: %w", vm.Status, hypervisor.ErrWrongPhase)
		}
		return h.Shutdown(ctx, fast)
	})
}

// Delete removes every VM in refs regardless of phase.
func (p *Parallels) Delete(ctx context.Context, refs []string) ([]string, error) {
	return p.forEachVM(ctx, refs, "Delete", func(ctx context.Context, vm *VM) error {
		return vm.r.deleteVM(ctx, vm.UUID)
	})
}

// Unregister removes every VM in refs from the inventory.
func (p *Parallels) Unregister(ctx context.Context, refs []string) ([]string, error) {
	return p.forEachVM(ctx, refs, "Unregister", func(ctx context.Context, vm *VM) error {
		return vm.r.ctlDo(ctx, "unregister", vm.UUID, "unregister", vm.UUID)
	})
}

// forEachVM resolves refs with a single listing, then runs fn for each VM
// concurrently, bounded by PoolSize. All VMs are attempted (best-effort);
// failures are logged and joined. The returned succeeded uuids are always
// valid, even when err != nil.
func (p *Parallels) forEachVM(ctx context.Context, refs []string, op string, fn func(context.Context, *VM) error) ([]string, error) {
	logger := log.WithFunc("parallels." + op)
	var (
		succeeded []string
		errs      []error
	)
	err := p.with(ctx, func() error {
		vms, err := p.resolveRefs(ctx, refs)
		if err != nil {
			return err
		}

		var mu sync.Mutex
		g := errgroup.Group{}
		if p.conf.PoolSize > 0 {
			g.SetLimit(p.conf.PoolSize)
		}
		for _, vm := range vms {
			g.Go(func() error {
				err := fn(ctx, vm)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					logger.Warnf(ctx, "%s VM %s: %v", op, vm.UUID, err)
					errs = append(errs, fmt.Errorf("VM %s: %w", vm.UUID, err))
					return nil
				}
				succeeded = append(succeeded, vm.UUID)
				return nil
			})
		}
		return g.Wait()
	})
	if err != nil {
		return nil, err
	}
	return succeeded, errors.Join(errs...)
}

// resolveRefs maps each ref to a VM, deduplicating by uuid. Any unknown
// ref fails the whole batch before a command is issued.
func (p *Parallels) resolveRefs(ctx context.Context, refs []string) ([]*VM, error) {
	all, err := p.r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(refs))
	var vms []*VM
	for _, ref := range refs {
		vm := findVM(all, ref)
		if vm == nil {
			return nil, fmt.Errorf("%q: %w", ref, hypervisor.ErrNotFound)
		}
		if _, dup := seen[vm.UUID]; dup {
			continue
		}
		seen[vm.UUID] = struct{}{}
		vms = append(vms, vm)
	}
	return vms, nil
}
