package parallels

import (
	"context"

	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/types"
)

var (
	listArgs = []string{"list", "--json", "--full", "--all"}
	infoArgs = []string{"list", "--json", "--full", "--all", "--info"}
)

// listAll joins the summary listing with the info listing by uuid.
// Output follows summary order. Summaries without details are dropped,
// and if the info listing fails the whole call fails.
func (r *runner) listAll(ctx context.Context) ([]*VM, error) {
	out, err := r.ctl(ctx, listArgs...)
	if err != nil {
		return nil, err
	}
	summaries, err := DecodeSummaries([]byte(out))
	if err != nil {
		return nil, err
	}

	out, err = r.ctl(ctx, infoArgs...)
	if err != nil {
		return nil, err
	}
	details, err := DecodeDetails([]byte(out))
	if err != nil {
		return nil, err
	}

	byUUID := make(map[string]*types.VMDetails, len(details))
	for i := range details {
		byUUID[details[i].UUID] = &details[i]
	}

	vms := make([]*VM, 0, len(summaries))
	for i := range summaries {
		d, ok := byUUID[summaries[i].UUID]
		if !ok {
			continue
		}
		vms = append(vms, &VM{VM: *types.NewVM(&summaries[i], d), r: r})
	}
	return vms, nil
}

// lookup returns the VM whose uuid, or failing that name, equals handle.
// A missing VM is (nil, nil).
func (r *runner) lookup(ctx context.Context, handle string) (*VM, error) {
	vms, err := r.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return findVM(vms, handle), nil
}

func findVM(vms []*VM, handle string) *VM {
	plain := make([]*types.VM, len(vms))
	for i, vm := range vms {
		plain[i] = &vm.VM
	}
	found := hypervisor.ResolveVMRef(plain, handle)
	if found == nil {
		return nil
	}
	for _, vm := range vms {
		if &vm.VM == found {
			return vm
		}
	}
	return nil
}
