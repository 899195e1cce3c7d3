package types

import (
	"fmt"
	"strconv"
)

// Toggle is an on/off switch value.
type Toggle string

const (
	On  Toggle = "on"
	Off Toggle = "off"
)

// ToggleOf converts a bool to On/Off.
func ToggleOf(enabled bool) Toggle {
	if enabled {
		return On
	}
	return Off
}

// HypervisorType selects the virtualization engine backing a VM.
type HypervisorType string

const (
	HypervisorParallels HypervisorType = "parallels"
	HypervisorApple     HypervisorType = "apple"
)

// NetworkType is the attachment mode of a network adapter.
type NetworkType string

const (
	NetworkShared   NetworkType = "shared"
	NetworkBridged  NetworkType = "bridged"
	NetworkHostOnly NetworkType = "host-only"
)

const (
	DefaultNetworkInterface = "net0"
	DefaultSoundDevice      = "sound0"
	DefaultCDROMDevice      = "cdrom0"
)

// VMOption is a single `prlctl set` change. The set of options is closed:
// only the types in this file implement it.
type VMOption interface {
	// Args returns the flags appended after `prlctl set <vm>`.
	Args() []string
	// Validate checks the payload before any command is issued.
	Validate() error

	vmOption()
}

// CPUCount sets the number of virtual CPUs.
type CPUCount int

func (o CPUCount) Args() []string { return []string{"--cpus", strconv.Itoa(int(o))} }

func (o CPUCount) Validate() error {
	if o <= 0 {
		return fmt.Errorf("cpu count must be positive, got %d", int(o))
	}
	return nil
}

// MemorySize sets guest memory in megabytes.
type MemorySize int

func (o MemorySize) Args() []string { return []string{"--memsize", strconv.Itoa(int(o))} }

func (o MemorySize) Validate() error {
	if o <= 0 {
		return fmt.Errorf("memory size must be positive, got %d MB", int(o))
	}
	return nil
}

// Hypervisor selects the hypervisor type.
type Hypervisor HypervisorType

func (o Hypervisor) Args() []string { return []string{"--hypervisor-type", string(o)} }

func (o Hypervisor) Validate() error {
	switch HypervisorType(o) {
	case HypervisorParallels, HypervisorApple:
		return nil
	}
	return fmt.Errorf("unknown hypervisor type %q", string(o))
}

// Network changes the attachment mode of a network adapter.
// An empty Interface means DefaultNetworkInterface.
type Network struct {
	Type      NetworkType
	Interface string
}

func (o Network) Args() []string {
	iface := o.Interface
	if iface == "" {
		iface = DefaultNetworkInterface
	}
	return []string{"--device-set", iface, "--type", string(o.Type)}
}

func (o Network) Validate() error {
	switch o.Type {
	case NetworkShared, NetworkBridged, NetworkHostOnly:
		return nil
	}
	return fmt.Errorf("unknown network type %q", string(o.Type))
}

// Sharing features toggled with `--<flag> on|off`.
type (
	SmartMount      Toggle
	SharedClipboard Toggle
	SharedCloud     Toggle
	SharedProfile   Toggle
	SharedCamera    Toggle
	SharedBluetooth Toggle
	SharedSmartcard Toggle
	IsolateVM       Toggle
)

func (o SmartMount) Args() []string      { return toggleArgs("--smart-mount", Toggle(o)) }
func (o SharedClipboard) Args() []string { return toggleArgs("--shared-clipboard", Toggle(o)) }
func (o SharedCloud) Args() []string     { return toggleArgs("--shared-cloud", Toggle(o)) }
func (o SharedProfile) Args() []string   { return toggleArgs("--shared-profile", Toggle(o)) }
func (o SharedCamera) Args() []string    { return toggleArgs("--auto-share-camera", Toggle(o)) }
func (o SharedBluetooth) Args() []string { return toggleArgs("--auto-share-bluetooth", Toggle(o)) }
func (o SharedSmartcard) Args() []string { return toggleArgs("--auto-share-smart-card", Toggle(o)) }
func (o IsolateVM) Args() []string       { return toggleArgs("--isolate-vm", Toggle(o)) }

func (o SmartMount) Validate() error      { return validateToggle(Toggle(o)) }
func (o SharedClipboard) Validate() error { return validateToggle(Toggle(o)) }
func (o SharedCloud) Validate() error     { return validateToggle(Toggle(o)) }
func (o SharedProfile) Validate() error   { return validateToggle(Toggle(o)) }
func (o SharedCamera) Validate() error    { return validateToggle(Toggle(o)) }
func (o SharedBluetooth) Validate() error { return validateToggle(Toggle(o)) }
func (o SharedSmartcard) Validate() error { return validateToggle(Toggle(o)) }
func (o IsolateVM) Validate() error       { return validateToggle(Toggle(o)) }

// WithoutSoundDevice removes a sound device; an empty handle means DefaultSoundDevice.
type WithoutSoundDevice struct {
	Handle string
}

func (o WithoutSoundDevice) Args() []string {
	return []string{"--device-del", orDefault(o.Handle, DefaultSoundDevice)}
}

func (o WithoutSoundDevice) Validate() error { return nil }

// WithoutCDROMDevice removes an optical drive; an empty handle means DefaultCDROMDevice.
type WithoutCDROMDevice struct {
	Handle string
}

func (o WithoutCDROMDevice) Args() []string {
	return []string{"--device-del", orDefault(o.Handle, DefaultCDROMDevice)}
}

func (o WithoutCDROMDevice) Validate() error { return nil }

func (CPUCount) vmOption()           {}
func (MemorySize) vmOption()         {}
func (Hypervisor) vmOption()         {}
func (Network) vmOption()            {}
func (SmartMount) vmOption()         {}
func (SharedClipboard) vmOption()    {}
func (SharedCloud) vmOption()        {}
func (SharedProfile) vmOption()      {}
func (SharedCamera) vmOption()       {}
func (SharedBluetooth) vmOption()    {}
func (SharedSmartcard) vmOption()    {}
func (IsolateVM) vmOption()          {}
func (WithoutSoundDevice) vmOption() {}
func (WithoutCDROMDevice) vmOption() {}

func toggleArgs(flag string, state Toggle) []string {
	return []string{flag, string(state)}
}

func validateToggle(state Toggle) error {
	if state != On && state != Off {
		return fmt.Errorf("toggle must be %q or %q, got %q", On, Off, string(state))
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
