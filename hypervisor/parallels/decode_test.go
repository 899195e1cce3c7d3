package parallels

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/cocoonstack/prlctl/types"
)

func TestDecodeSummaries_EmptyArray(t *testing.T) {
	got, err := DecodeSummaries([]byte("[]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no summaries, got %d", len(got))
	}
}

func TestDecodeSummaries_Malformed(t *testing.T) {
	_, err := DecodeSummaries([]byte(`[{"uuid": `))
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
	if decErr.What != "VM list" {
		t.Errorf("expected What %q, got %q", "VM list", decErr.What)
	}
}

func TestDecodeSummaries_UnknownStatus(t *testing.T) {
	_, err := DecodeSummaries([]byte(`[{"uuid":"u","name":"n","status":"hibernating","ip_configured":"-"}]`))
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError for unknown status, got %v", err)
	}
}

func TestDecodeDetails_Fixture(t *testing.T) {
	got, err := DecodeDetails([]byte(fixture(t, "vm-info.json")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 details, got %d", len(got))
	}
	first := got[0]
	if first.UUID != runner1UUID || first.Name != "runner-1" {
		t.Errorf("unexpected identity %q/%q", first.UUID, first.Name)
	}
	if first.Optimization.HypervisorType != "apple" || first.Optimization.FasterVirtualMachine != "on" {
		t.Errorf("unexpected optimization block %+v", first.Optimization)
	}
	if first.IsPackage() {
		t.Error("runner-1 should not be a package")
	}
	if !got[2].IsPackage() {
		t.Error("packaged-base should be a package")
	}
}

func TestDecodeSnapshots_EmptyObject(t *testing.T) {
	for _, payload := range []string{"{}", "{}\n", "  {} "} {
		got, err := DecodeSnapshots([]byte(payload), types.VMRef{UUID: "u"})
		if err != nil {
			t.Fatalf("payload %q: unexpected error: %v", payload, err)
		}
		if len(got) != 0 {
			t.Errorf("payload %q: expected no snapshots, got %d", payload, len(got))
		}
	}
}

func TestDecodeSnapshots_SortedWithOwner(t *testing.T) {
	owner := types.VMRef{UUID: "machine-uuid", Name: "machine-name"}
	got, err := DecodeSnapshots([]byte(fixture(t, "vm-snapshot-list.json")), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if got[0].UUID != "{0a6c3c1e-5b0f-4f3e-9a53-0d2f6f0b8c11}" || got[1].UUID != "{64d481bb-ce04-45b1-8328-49e4e4c43ddf}" {
		t.Errorf("snapshots not sorted by uuid: %q, %q", got[0].UUID, got[1].UUID)
	}
	if got[1].Name != "Snapshot for linked clone" {
		t.Errorf("expected name %q, got %q", "Snapshot for linked clone", got[1].Name)
	}
	for _, s := range got {
		if s.Owner != owner {
			t.Errorf("snapshot %s: expected owner %+v, got %+v", s.UUID, owner, s.Owner)
		}
	}
}

func TestDecodeSnapshots_Malformed(t *testing.T) {
	_, err := DecodeSnapshots([]byte(`{"x": `), types.VMRef{})
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
}

func TestDecodeDetails_RoundTrip(t *testing.T) {
	want := []types.VMDetails{
		{
			UUID:        "{11111111-1111-4111-8111-111111111111}",
			Name:        "runner-1",
			Description: "ci runner",
			State:       types.VMStatusRunning,
			Home:        "/Users/ci/Parallels/runner-1.pvm/",
			Optimization: types.OptimizationDetails{
				FasterVirtualMachine: "on",
				HypervisorType:       "apple",
			},
		},
		{
			UUID:  "{bd70007c-83b8-4642-b1d0-fa8ddfa0a4cf}",
			Name:  "packaged-base",
			State: types.VMStatusStopped,
			Home:  "/Users/ci/Parallels/packaged-base.pvmp/",
			Optimization: types.OptimizationDetails{
				FasterVirtualMachine: "off",
				HypervisorType:       "parallels",
			},
		},
	}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := DecodeDetails(data)
	if err != nil {
		t.Fatalf("DecodeDetails: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
