package vm

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cmdcore "github.com/cocoonstack/prlctl/cmd/core"
	"github.com/cocoonstack/prlctl/types"
)

// optionsFromFlags turns the explicitly set flags of `vm set` into options,
// in a fixed order. Every option is validated before any is applied.
func optionsFromFlags(cmd *cobra.Command) ([]types.VMOption, error) {
	flags := cmd.Flags()
	var opts []types.VMOption

	if flags.Changed("cpus") {
		n, _ := flags.GetInt("cpus")
		opts = append(opts, types.CPUCount(n))
	}
	if flags.Changed("memsize") {
		s, _ := flags.GetString("memsize")
		mb, err := cmdcore.ParseMemoryMB(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, types.MemorySize(mb))
	}
	if flags.Changed("hypervisor-type") {
		s, _ := flags.GetString("hypervisor-type")
		opts = append(opts, types.Hypervisor(s))
	}
	if flags.Changed("network") {
		s, _ := flags.GetString("network")
		iface, _ := flags.GetString("network-iface")
		opts = append(opts, types.Network{Type: types.NetworkType(s), Interface: iface})
	}

	toggles := []struct {
		flag string
		opt  func(types.Toggle) types.VMOption
	}{
		{"smart-mount", func(t types.Toggle) types.VMOption { return types.SmartMount(t) }},
		{"shared-clipboard", func(t types.Toggle) types.VMOption { return types.SharedClipboard(t) }},
		{"shared-cloud", func(t types.Toggle) types.VMOption { return types.SharedCloud(t) }},
		{"shared-profile", func(t types.Toggle) types.VMOption { return types.SharedProfile(t) }},
		{"shared-camera", func(t types.Toggle) types.VMOption { return types.SharedCamera(t) }},
		{"shared-bluetooth", func(t types.Toggle) types.VMOption { return types.SharedBluetooth(t) }},
		{"shared-smartcard", func(t types.Toggle) types.VMOption { return types.SharedSmartcard(t) }},
		{"isolate", func(t types.Toggle) types.VMOption { return types.IsolateVM(t) }},
	}
	for _, tg := range toggles {
		if !flags.Changed(tg.flag) {
			continue
		}
		on, _ := flags.GetBool(tg.flag)
		opts = append(opts, tg.opt(types.ToggleOf(on)))
	}

	if on, _ := flags.GetBool("no-sound"); on {
		opts = append(opts, types.WithoutSoundDevice{})
	}
	if on, _ := flags.GetBool("no-cdrom"); on {
		opts = append(opts, types.WithoutCDROMDevice{})
	}

	for _, opt := range opts {
		if err := opt.Validate(); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func describeOption(opt types.VMOption) string {
	if mem, ok := opt.(types.MemorySize); ok {
		return "memory " + cmdcore.FormatMemoryMB(int(mem))
	}
	return fmt.Sprintf("set %s", strings.Join(opt.Args(), " "))
}
