package parallels

import (
	"context"
	"fmt"
	"time"

	"github.com/projecteru2/core/log"

	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/utils"
)

// WaitForIP re-looks up handle every interval until it is running with an
// address. On timeout the last running handle seen (nil if the VM never
// reached running) comes back with the error. A VM that disappears
// fails immediately with hypervisor.ErrNotFound.
func (p *Parallels) WaitForIP(ctx context.Context, handle string, timeout, interval time.Duration) (*RunningVM, error) {
	logger := log.WithFunc("parallels.WaitForIP")
	running, err := utils.Poll(ctx, timeout, interval, func(ctx context.Context) (*RunningVM, bool, error) {
		vm, err := p.Lookup(ctx, handle)
		if err != nil {
			return nil, false, err
		}
		if vm == nil {
			return nil, false, fmt.Errorf("%q: %w", handle, hypervisor.ErrNotFound)
		}
		h, ok := vm.AsRunningVM()
		if !ok {
			return nil, false, nil
		}
		return h, h.HasIPAddress(), nil
	})
	if err != nil {
		return running, fmt.Errorf("wait for IP of %s: %w", handle, err)
	}
	logger.Infof(ctx, "%s has address %s", handle, running.IPAddress())
	return running, nil
}
