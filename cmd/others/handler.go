package others

import (
	"fmt"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	cmdcore "github.com/cocoonstack/prlctl/cmd/core"
	"github.com/cocoonstack/prlctl/version"
)

type Handler struct {
	cmdcore.BaseHandler
}

func (h Handler) InstallLicense(cmd *cobra.Command, _ []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString("key")
	company, _ := cmd.Flags().GetString("company")
	if err := p.InstallLicense(ctx, key, company); err != nil {
		return err
	}
	log.WithFunc("cmd.license").Info(ctx, "license installed")
	return nil
}

func (h Handler) Version(_ *cobra.Command, _ []string) error {
	fmt.Print(version.String())
	return nil
}
