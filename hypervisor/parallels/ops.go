package parallels

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/projecteru2/core/log"

	"github.com/cocoonstack/prlctl/types"
)

// Delete removes the VM and its files. A stop is attempted first and its
// failure ignored, since the VM may well not be running.
func (b base) Delete(ctx context.Context) error {
	return b.r.deleteVM(ctx, b.uuid)
}

// Unregister removes the VM from the Parallels inventory, leaving its
// files on disk.
func (b base) Unregister(ctx context.Context) error {
	return b.r.ctlDo(ctx, "unregister", b.uuid, "unregister", b.uuid)
}

// IPAddress is the address prlctl reported, or types.NoIPAddress.
func (vm *RunningVM) IPAddress() string { return vm.ipAddress }

// HasIPAddress reports whether any address was reported.
func (vm *RunningVM) HasIPAddress() bool { return vm.ipAddress != types.NoIPAddress }

// HasIPv4Address reports whether the address parses as IPv4.
func (vm *RunningVM) HasIPv4Address() bool {
	addr, err := netip.ParseAddr(vm.ipAddress)
	return err == nil && addr.Is4()
}

// HasIPv6Address reports whether the address parses as IPv6.
func (vm *RunningVM) HasIPv6Address() bool {
	addr, err := netip.ParseAddr(vm.ipAddress)
	return err == nil && addr.Is6()
}

// Shutdown stops the VM; immediately skips the guest shutdown sequence.
func (vm *RunningVM) Shutdown(ctx context.Context, immediately bool) error {
	return vm.r.stopVM(ctx, vm.uuid, immediately)
}

// RunCommand runs command inside the guest and returns its output.
//
// For a non-root user the command is wrapped as su - '<user>' -c '<command>'.
// Neither value is escaped: a quote inside either breaks out of the wrapper,
// so callers must not pass untrusted input.
func (vm *RunningVM) RunCommand(ctx context.Context, command string, user types.User) (string, error) {
	return vm.r.runCommand(ctx, vm.uuid, command, user)
}

// Start boots the VM; wait blocks until the guest OS has booted.
func (vm *StoppedVM) Start(ctx context.Context, wait bool) error {
	return vm.r.startVM(ctx, vm.uuid, wait)
}

// Clone creates a copy named newName. fast makes a linked clone backed by
// a snapshot of this VM.
func (vm *StoppedVM) Clone(ctx context.Context, newName string, fast bool) error {
	return vm.r.cloneVM(ctx, vm.uuid, newName, fast)
}

// Snapshots lists the VM's snapshots.
func (vm *StoppedVM) Snapshots(ctx context.Context) ([]types.VMSnapshot, error) {
	out, err := vm.r.ctl(ctx, "snapshot-list", vm.uuid, "--json")
	if err != nil {
		return nil, fmt.Errorf("list snapshots of %s: %w", vm.uuid, err)
	}
	return DecodeSnapshots([]byte(out), vm.Ref())
}

// DeleteSnapshot deletes snap from this VM.
func (vm *StoppedVM) DeleteSnapshot(ctx context.Context, snap types.VMSnapshot) error {
	return vm.r.deleteSnapshot(ctx, vm.uuid, snap.UUID)
}

// Clean deletes every snapshot. Linked clones leave one behind each, and
// they pile up on disk.
func (vm *StoppedVM) Clean(ctx context.Context) error {
	snaps, err := vm.Snapshots(ctx)
	if err != nil {
		return err
	}
	for _, s := range snaps {
		if err := vm.DeleteSnapshot(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// Rename changes the VM's display name.
func (vm *StoppedVM) Rename(ctx context.Context, newName string) error {
	return vm.r.renameVM(ctx, vm.uuid, newName)
}

// Set applies one configuration change.
func (vm *StoppedVM) Set(ctx context.Context, opt types.VMOption) error {
	return vm.r.setVMOption(ctx, vm.uuid, opt)
}

// Unpack expands the bundle in place. The returned handle is built locally;
// the VM is not re-listed.
func (vm *PackagedVM) Unpack(ctx context.Context) (*StoppedVM, error) {
	if err := vm.r.ctlDo(ctx, "unpack", vm.uuid, "unpack", vm.uuid); err != nil {
		return nil, err
	}
	return &StoppedVM{base: vm.base}, nil
}

// The runner methods below take a handle, which prlctl accepts as either
// a uuid or a name.

func (r *runner) startVM(ctx context.Context, handle string, wait bool) error {
	args := []string{"start", handle}
	if wait {
		args = append(args, "--wait")
	}
	return r.ctlDo(ctx, "start", handle, args...)
}

func (r *runner) stopVM(ctx context.Context, handle string, fast bool) error {
	args := []string{"stop", handle}
	if fast {
		args = append(args, "--fast")
	}
	return r.ctlDo(ctx, "stop", handle, args...)
}

func (r *runner) cloneVM(ctx context.Context, handle, newName string, fast bool) error {
	args := []string{"clone", handle, "--name", newName}
	if fast {
		args = append(args, "--linked")
	}
	return r.ctlDo(ctx, "clone", handle, args...)
}

func (r *runner) deleteVM(ctx context.Context, handle string) error {
	if err := r.stopVM(ctx, handle, true); err != nil {
		log.WithFunc("parallels.Delete").Warnf(ctx, "stop before delete %s: %v", handle, err)
	}
	return r.ctlDo(ctx, "delete", handle, "delete", handle)
}

func (r *runner) deleteSnapshot(ctx context.Context, owner, snapshot string) error {
	return r.ctlDo(ctx, "delete snapshot", snapshot, "snapshot-delete", owner, "-i", snapshot)
}

func (r *runner) setVMOption(ctx context.Context, handle string, opt types.VMOption) error {
	if opt == nil {
		return fmt.Errorf("set %s: no option given", handle)
	}
	if err := opt.Validate(); err != nil {
		return fmt.Errorf("set %s: %w", handle, err)
	}
	return r.ctlDo(ctx, "set", handle, append([]string{"set", handle}, opt.Args()...)...)
}

func (r *runner) renameVM(ctx context.Context, handle, newName string) error {
	if newName == "" {
		return fmt.Errorf("rename %s: new name is empty", handle)
	}
	return r.ctlDo(ctx, "rename", handle, "set", handle, "--name", newName)
}

func (r *runner) runCommand(ctx context.Context, handle, command string, user types.User) (string, error) {
	if !user.IsRoot() {
		command = fmt.Sprintf("su - '%s' -c '%s'", user.Name, command)
	}
	out, err := r.ctl(ctx, "exec", handle, command)
	if err != nil {
		return "", fmt.Errorf("exec on %s: %w", handle, err)
	}
	return out, nil
}
