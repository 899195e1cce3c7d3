package parallels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cocoonstack/prlctl/types"
)

// DecodeError reports prlctl output that could not be decoded.
type DecodeError struct {
	What string // which listing was being decoded
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeSummaries parses the output of `prlctl list --json --full --all`.
func DecodeSummaries(data []byte) ([]types.VMSummary, error) {
	var out []types.VMSummary
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{What: "VM list", Err: err}
	}
	return out, nil
}

// DecodeDetails parses the output of `prlctl list --json --full --all --info`.
func DecodeDetails(data []byte) ([]types.VMDetails, error) {
	var out []types.VMDetails
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{What: "VM info list", Err: err}
	}
	return out, nil
}

// DecodeSnapshots parses `prlctl snapshot-list <vm> --json`, an object keyed
// by snapshot uuid. prlctl prints "{}" for a VM without snapshots; that
// payload is answered without decoding. Results are sorted by uuid.
func DecodeSnapshots(data []byte, owner types.VMRef) ([]types.VMSnapshot, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 2 && data[0] == '{' && data[1] == '}' {
		return nil, nil
	}
	var raw map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{What: "snapshot list", Err: err}
	}
	out := make([]types.VMSnapshot, 0, len(raw))
	for id, s := range raw {
		out = append(out, types.VMSnapshot{UUID: id, Name: s.Name, Owner: owner})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UUID < out[j].UUID })
	return out, nil
}
