package hypervisor

import (
	"github.com/cocoonstack/prlctl/types"
	"github.com/cocoonstack/prlctl/utils"
)

// ResolveVMRef returns the first VM whose uuid matches ref, or failing that
// the first VM whose name matches ref, in listing order. Uuids compare with
// and without the braces prlctl prints. Returns nil when nothing matches.
func ResolveVMRef(vms []*types.VM, ref string) *types.VM {
	for _, vm := range vms {
		if vm.UUID == ref || utils.SameUUID(vm.UUID, ref) {
			return vm
		}
	}
	for _, vm := range vms {
		if vm.Name == ref {
			return vm
		}
	}
	return nil
}
