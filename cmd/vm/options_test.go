package vm

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cocoonstack/prlctl/types"
)

func newSetCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "set"}
	addSetFlags(cmd)
	for k, v := range flags {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set flag %s: %v", k, err)
		}
	}
	return cmd
}

func argsOf(opts []types.VMOption) []string {
	var out []string
	for _, o := range opts {
		out = append(out, strings.Join(o.Args(), " "))
	}
	return out
}

func TestOptionsFromFlags_OnlyChanged(t *testing.T) {
	opts, err := optionsFromFlags(newSetCmd(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("expected no options, got %q", argsOf(opts))
	}
}

func TestOptionsFromFlags_Mapping(t *testing.T) {
	cmd := newSetCmd(t, map[string]string{
		"cpus":             "4",
		"memsize":          "8G",
		"network":          "host-only",
		"shared-smartcard": "true",
		"shared-camera":    "false",
		"no-sound":         "true",
	})
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"--cpus 4",
		"--memsize 8192",
		"--device-set net0 --type host-only",
		"--auto-share-camera off",
		"--auto-share-smart-card on",
		"--device-del sound0",
	}
	got := argsOf(opts)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestOptionsFromFlags_Invalid(t *testing.T) {
	for _, flags := range []map[string]string{
		{"cpus": "0"},
		{"memsize": "huge"},
		{"hypervisor-type": "kvm"},
		{"network": "nat"},
	} {
		if _, err := optionsFromFlags(newSetCmd(t, flags)); err == nil {
			t.Errorf("%v: expected error", flags)
		}
	}
}

func TestDescribeOption(t *testing.T) {
	if got := describeOption(types.MemorySize(4096)); got != "memory 4GiB" {
		t.Errorf("unexpected %q", got)
	}
	if got := describeOption(types.CPUCount(2)); got != "set --cpus 2" {
		t.Errorf("unexpected %q", got)
	}
}
