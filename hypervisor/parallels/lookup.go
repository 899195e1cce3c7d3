package parallels

import "context"

func (p *Parallels) LookupRunningVMs(ctx context.Context) ([]*RunningVM, error) {
	return lookupPhase[*RunningVM](ctx, p)
}

func (p *Parallels) LookupStoppedVMs(ctx context.Context) ([]*StoppedVM, error) {
	return lookupPhase[*StoppedVM](ctx, p)
}

func (p *Parallels) LookupPackagedVMs(ctx context.Context) ([]*PackagedVM, error) {
	return lookupPhase[*PackagedVM](ctx, p)
}

func (p *Parallels) LookupSuspendedVMs(ctx context.Context) ([]*SuspendedVM, error) {
	return lookupPhase[*SuspendedVM](ctx, p)
}

func (p *Parallels) LookupInvalidVMs(ctx context.Context) ([]*InvalidVM, error) {
	return lookupPhase[*InvalidVM](ctx, p)
}

func (p *Parallels) LookupStartingVMs(ctx context.Context) ([]*StartingVM, error) {
	return lookupPhase[*StartingVM](ctx, p)
}

func (p *Parallels) LookupStoppingVMs(ctx context.Context) ([]*StoppingVM, error) {
	return lookupPhase[*StoppingVM](ctx, p)
}

func (p *Parallels) LookupResumingVMs(ctx context.Context) ([]*ResumingVM, error) {
	return lookupPhase[*ResumingVM](ctx, p)
}

// lookupPhase lists all VMs and keeps those narrowing to T, in listing order.
func lookupPhase[T Phase](ctx context.Context, p *Parallels) ([]T, error) {
	vms, err := p.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, vm := range vms {
		if h, ok := vm.Phase().(T); ok {
			out = append(out, h)
		}
	}
	return out, nil
}
