package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// VMStatus is the lifecycle status of a VM as reported by prlctl.
type VMStatus string

const (
	VMStatusRunning   VMStatus = "running"
	VMStatusStopped   VMStatus = "stopped"
	VMStatusPackaged  VMStatus = "packaged" // never reported by `prlctl list`; derived from the bundle path
	VMStatusSuspended VMStatus = "suspended"
	VMStatusInvalid   VMStatus = "invalid"
	VMStatusStarting  VMStatus = "starting"
	VMStatusStopping  VMStatus = "stopping"
	VMStatusResuming  VMStatus = "resuming"
)

// AllVMStatuses lists every status in declaration order.
var AllVMStatuses = []VMStatus{
	VMStatusRunning,
	VMStatusStopped,
	VMStatusPackaged,
	VMStatusSuspended,
	VMStatusInvalid,
	VMStatusStarting,
	VMStatusStopping,
	VMStatusResuming,
}

// Valid reports whether s belongs to the closed status set.
func (s VMStatus) Valid() bool {
	for _, known := range AllVMStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects status strings outside the closed set.
func (s *VMStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status := VMStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("unknown VM status %q", raw)
	}
	*s = status
	return nil
}

// NoIPAddress is the placeholder prlctl prints when no address is configured.
const NoIPAddress = "-"

// PackageSuffix marks a VM bundle that has been packed into a single file.
const PackageSuffix = ".pvmp"

// VMSummary is one entry of `prlctl list --json --full --all`.
type VMSummary struct {
	UUID      string   `json:"uuid"`
	Name      string   `json:"name"`
	Status    VMStatus `json:"status"`
	IPAddress string   `json:"ip_configured"`
}

// VMDetails is one entry of `prlctl list --json --full --all --info`.
// The info listing carries far more keys; only the ones used here are modeled.
type VMDetails struct {
	UUID         string              `json:"ID"`
	Name         string              `json:"Name"`
	Description  string              `json:"Description"`
	State        VMStatus            `json:"State"`
	Home         string              `json:"Home"`
	Optimization OptimizationDetails `json:"Optimization"`
}

// OptimizationDetails is the "Optimization" block of the info listing.
type OptimizationDetails struct {
	FasterVirtualMachine string `json:"Faster virtual machine"`
	HypervisorType       string `json:"Hypervisor type"`
}

// IsPackage reports whether the VM bundle is a packed .pvmp file.
// The summary listing has no way to express this.
func (d *VMDetails) IsPackage() bool {
	return strings.HasSuffix(d.Home, PackageSuffix)
}

// VM is the reconciled record built from a VMSummary and its VMDetails.
type VM struct {
	UUID      string   `json:"uuid"`
	Name      string   `json:"name"`
	Status    VMStatus `json:"status"`
	IPAddress string   `json:"ip_configured"`
}

// NewVM joins a summary with its details. A packaged bundle overrides
// whatever status the summary reported.
func NewVM(summary *VMSummary, details *VMDetails) *VM {
	status := summary.Status
	if details != nil && details.IsPackage() {
		status = VMStatusPackaged
	}
	return &VM{
		UUID:      summary.UUID,
		Name:      summary.Name,
		Status:    status,
		IPAddress: summary.IPAddress,
	}
}

// Equal compares identity only: two records for the same uuid are equal
// even if name, status or address differ.
func (vm *VM) Equal(other *VM) bool {
	if vm == nil || other == nil {
		return vm == other
	}
	return vm.UUID == other.UUID
}
