package parallels

import (
	"context"

	"github.com/cocoonstack/prlctl/types"
)

// VM is a reconciled record bound to the client that listed it, so that
// narrowing to a phase handle yields something that can issue commands.
type VM struct {
	types.VM
	r *runner
}

// Phase is implemented by exactly the eight handle types below.
// Each handle exposes only the operations valid in its phase; Delete and
// Unregister are valid in all of them.
type Phase interface {
	UUID() string
	Name() string
	Status() types.VMStatus
	Delete(ctx context.Context) error
	Unregister(ctx context.Context) error

	phase()
}

// Phase returns the handle matching the VM's status. A status outside the
// known set (only possible for hand-built records) yields an InvalidVM.
func (vm *VM) Phase() Phase {
	b := base{uuid: vm.UUID, name: vm.Name, r: vm.r}
	switch vm.Status {
	case types.VMStatusRunning:
		return &RunningVM{base: b, ipAddress: vm.IPAddress}
	case types.VMStatusStopped:
		return &StoppedVM{base: b}
	case types.VMStatusPackaged:
		return &PackagedVM{base: b}
	case types.VMStatusSuspended:
		return &SuspendedVM{base: b}
	case types.VMStatusStarting:
		return &StartingVM{base: b}
	case types.VMStatusStopping:
		return &StoppingVM{base: b}
	case types.VMStatusResuming:
		return &ResumingVM{base: b}
	default:
		return &InvalidVM{base: b}
	}
}

func (vm *VM) AsRunningVM() (*RunningVM, bool) {
	h, ok := vm.Phase().(*RunningVM)
	return h, ok
}

func (vm *VM) AsStoppedVM() (*StoppedVM, bool) {
	h, ok := vm.Phase().(*StoppedVM)
	return h, ok
}

func (vm *VM) AsPackagedVM() (*PackagedVM, bool) {
	h, ok := vm.Phase().(*PackagedVM)
	return h, ok
}

func (vm *VM) AsSuspendedVM() (*SuspendedVM, bool) {
	h, ok := vm.Phase().(*SuspendedVM)
	return h, ok
}

func (vm *VM) AsInvalidVM() (*InvalidVM, bool) {
	h, ok := vm.Phase().(*InvalidVM)
	return h, ok
}

func (vm *VM) AsStartingVM() (*StartingVM, bool) {
	h, ok := vm.Phase().(*StartingVM)
	return h, ok
}

func (vm *VM) AsStoppingVM() (*StoppingVM, bool) {
	h, ok := vm.Phase().(*StoppingVM)
	return h, ok
}

func (vm *VM) AsResumingVM() (*ResumingVM, bool) {
	h, ok := vm.Phase().(*ResumingVM)
	return h, ok
}

// base carries identity and the operations common to every phase.
type base struct {
	uuid string
	name string
	r    *runner
}

func (b base) UUID() string { return b.uuid }
func (b base) Name() string { return b.name }

// Ref returns the handle's identity as a plain value.
func (b base) Ref() types.VMRef { return types.VMRef{UUID: b.uuid, Name: b.name} }

type (
	// RunningVM can be shut down and can run guest commands.
	RunningVM struct {
		base
		ipAddress string
	}
	// StoppedVM can be started, cloned, reconfigured and cleaned.
	StoppedVM struct{ base }
	// PackagedVM is a .pvmp bundle that must be unpacked before use.
	PackagedVM  struct{ base }
	SuspendedVM struct{ base }
	InvalidVM   struct{ base }
	StartingVM  struct{ base }
	StoppingVM  struct{ base }
	ResumingVM  struct{ base }
)

func (*RunningVM) Status() types.VMStatus   { return types.VMStatusRunning }
func (*StoppedVM) Status() types.VMStatus   { return types.VMStatusStopped }
func (*PackagedVM) Status() types.VMStatus  { return types.VMStatusPackaged }
func (*SuspendedVM) Status() types.VMStatus { return types.VMStatusSuspended }
func (*InvalidVM) Status() types.VMStatus   { return types.VMStatusInvalid }
func (*StartingVM) Status() types.VMStatus  { return types.VMStatusStarting }
func (*StoppingVM) Status() types.VMStatus  { return types.VMStatusStopping }
func (*ResumingVM) Status() types.VMStatus  { return types.VMStatusResuming }

func (*RunningVM) phase()   {}
func (*StoppedVM) phase()   {}
func (*PackagedVM) phase()  {}
func (*SuspendedVM) phase() {}
func (*InvalidVM) phase()   {}
func (*StartingVM) phase()  {}
func (*StoppingVM) phase()  {}
func (*ResumingVM) phase()  {}
