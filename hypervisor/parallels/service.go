package parallels

import (
	"context"
	"fmt"
)

// InstallLicense installs and activates a Parallels Desktop license.
func (p *Parallels) InstallLicense(ctx context.Context, key, company string) error {
	if key == "" {
		return fmt.Errorf("install license: key is empty")
	}
	return p.with(ctx, func() error {
		_, err := p.r.srvctl(ctx, "install-license", "-k", key, "--company", company, "--activate-online-immediately")
		if err != nil {
			return fmt.Errorf("install license: %w", err)
		}
		return nil
	})
}
