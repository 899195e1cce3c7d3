package hypervisor

import (
	"testing"

	"github.com/cocoonstack/prlctl/types"
)

func TestResolveVMRef(t *testing.T) {
	vms := []*types.VM{
		{UUID: "{11111111-1111-4111-8111-111111111111}", Name: "alpha"},
		{UUID: "{22222222-2222-4222-8222-222222222222}", Name: "beta"},
		{UUID: "{33333333-3333-4333-8333-333333333333}", Name: "beta"},
	}

	if got := ResolveVMRef(vms, "{22222222-2222-4222-8222-222222222222}"); got != vms[1] {
		t.Errorf("exact uuid: got %+v", got)
	}
	if got := ResolveVMRef(vms, "22222222-2222-4222-8222-222222222222"); got != vms[1] {
		t.Errorf("braceless uuid: got %+v", got)
	}
	if got := ResolveVMRef(vms, "beta"); got != vms[1] {
		t.Errorf("name: expected first match, got %+v", got)
	}
	if got := ResolveVMRef(vms, "gamma"); got != nil {
		t.Errorf("missing: expected nil, got %+v", got)
	}
	if got := ResolveVMRef(nil, "alpha"); got != nil {
		t.Errorf("empty list: expected nil, got %+v", got)
	}
}
