package parallels

import (
	"context"
	"fmt"
	"strings"

	"github.com/cocoonstack/prlctl/types"
)

// The methods in this file take a handle (uuid or name) and pass it to
// prlctl unchanged, without listing VMs first.

func (p *Parallels) StartVM(ctx context.Context, handle string, wait bool) error {
	return p.with(ctx, func() error { return p.r.startVM(ctx, handle, wait) })
}

func (p *Parallels) ShutdownVM(ctx context.Context, handle string, immediately bool) error {
	return p.with(ctx, func() error { return p.r.stopVM(ctx, handle, immediately) })
}

func (p *Parallels) CloneVM(ctx context.Context, handle, newName string, fast bool) error {
	return p.with(ctx, func() error { return p.r.cloneVM(ctx, handle, newName, fast) })
}

func (p *Parallels) RenameVM(ctx context.Context, handle, newName string) error {
	return p.with(ctx, func() error { return p.r.renameVM(ctx, handle, newName) })
}

func (p *Parallels) UnpackVM(ctx context.Context, handle string) error {
	return p.with(ctx, func() error { return p.r.ctlDo(ctx, "unpack", handle, "unpack", handle) })
}

// SetVMOption applies one configuration change. The option is validated
// before any command runs.
func (p *Parallels) SetVMOption(ctx context.Context, handle string, opt types.VMOption) error {
	return p.with(ctx, func() error { return p.r.setVMOption(ctx, handle, opt) })
}

// RunCommand runs command in the guest as user. See RunningVM.RunCommand
// for the quoting caveat.
func (p *Parallels) RunCommand(ctx context.Context, handle, command string, user types.User) (string, error) {
	var out string
	err := p.with(ctx, func() (err error) {
		out, err = p.r.runCommand(ctx, handle, command, user)
		return err
	})
	return out, err
}

func (p *Parallels) DeleteVM(ctx context.Context, handle string) error {
	return p.with(ctx, func() error { return p.r.deleteVM(ctx, handle) })
}

func (p *Parallels) UnregisterVM(ctx context.Context, handle string) error {
	return p.with(ctx, func() error { return p.r.ctlDo(ctx, "unregister", handle, "unregister", handle) })
}

// RegisterVM adds the bundle at path to the inventory under a fresh uuid.
func (p *Parallels) RegisterVM(ctx context.Context, path string) error {
	return p.with(ctx, func() error { return p.r.registerVM(ctx, path) })
}

// ImportVM registers the bundle at path and returns the VM that appeared.
// It returns nil if no new VM can be identified, for example when the
// bundle was already registered.
func (p *Parallels) ImportVM(ctx context.Context, path string) (*VM, error) {
	var imported *VM
	err := p.with(ctx, func() error {
		before, err := p.r.listAll(ctx)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		if err := p.r.registerVM(ctx, path); err != nil {
			return err
		}
		after, err := p.r.listAll(ctx)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}
		for _, vm := range after {
			if !containsVM(before, vm) {
				imported = vm
				return nil
			}
		}
		return nil
	})
	return imported, err
}

// SnapshotsForVM lists the snapshots of the VM named by handle. Each
// snapshot refers back to its owner by uuid.
func (p *Parallels) SnapshotsForVM(ctx context.Context, handle string) ([]types.VMSnapshot, error) {
	var snaps []types.VMSnapshot
	err := p.with(ctx, func() (err error) {
		snaps, err = p.r.snapshots(ctx, handle)
		return err
	})
	return snaps, err
}

// DeleteSnapshot deletes snap from its owning VM.
func (p *Parallels) DeleteSnapshot(ctx context.Context, snap types.VMSnapshot) error {
	return p.with(ctx, func() error { return p.r.deleteSnapshot(ctx, snap.Owner.UUID, snap.UUID) })
}

// CleanVM deletes every snapshot of the VM named by handle.
func (p *Parallels) CleanVM(ctx context.Context, handle string) error {
	return p.with(ctx, func() error {
		snaps, err := p.r.snapshots(ctx, handle)
		if err != nil {
			return err
		}
		for _, s := range snaps {
			if err := p.r.deleteSnapshot(ctx, s.Owner.UUID, s.UUID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *runner) registerVM(ctx context.Context, path string) error {
	return r.ctlDo(ctx, "register", path, "register", path, "--preserve-uuid=no")
}

// snapshots lists snapshots by handle. The owner is resolved with a fresh
// listing; if it cannot be found the result is empty.
func (r *runner) snapshots(ctx context.Context, handle string) ([]types.VMSnapshot, error) {
	out, err := r.ctl(ctx, "snapshot-list", handle, "--json")
	if err != nil {
		return nil, fmt.Errorf("list snapshots of %s: %w", handle, err)
	}
	if isEmptyObject(out) {
		return nil, nil
	}
	owner, err := r.lookup(ctx, handle)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	return DecodeSnapshots([]byte(out), types.VMRef{UUID: owner.UUID, Name: owner.Name})
}

func isEmptyObject(out string) bool {
	return strings.TrimSpace(out) == "{}"
}

func containsVM(vms []*VM, target *VM) bool {
	for _, vm := range vms {
		if vm.Equal(&target.VM) {
			return true
		}
	}
	return false
}
