package types

// VMRef identifies a VM by uuid, keeping the name for display.
type VMRef struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// VMSnapshot is a snapshot of a VM. It keeps a reference to its owner
// because deleting it requires the owning VM's uuid as well as its own.
type VMSnapshot struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Owner VMRef  `json:"vm"`
}
