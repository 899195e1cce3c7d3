package snapshot

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"

	cmdcore "github.com/cocoonstack/prlctl/cmd/core"
	"github.com/cocoonstack/prlctl/hypervisor"
	"github.com/cocoonstack/prlctl/types"
)

type Handler struct {
	cmdcore.BaseHandler
}

func (h Handler) List(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	snaps, err := p.SnapshotsForVM(ctx, args[0])
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println("No snapshots found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0) //nolint:mnd
	_, _ = fmt.Fprintln(w, "UUID\tNAME\tVM")
	for _, s := range snaps {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.UUID, s.Name, s.Owner.Name)
	}
	w.Flush() //nolint:errcheck,gosec
	return nil
}

func (h Handler) Delete(cmd *cobra.Command, args []string) error {
	ctx, p, err := h.InitClient(cmd)
	if err != nil {
		return err
	}
	vm, err := p.Lookup(ctx, args[0])
	if err != nil {
		return err
	}
	if vm == nil {
		return fmt.Errorf("%q: %w", args[0], hypervisor.ErrNotFound)
	}
	owner := types.VMRef{UUID: vm.UUID, Name: vm.Name}
	logger := log.WithFunc("cmd.snapshot.delete")
	for _, id := range args[1:] {
		if err := p.DeleteSnapshot(ctx, types.VMSnapshot{UUID: id, Owner: owner}); err != nil {
			return err
		}
		logger.Infof(ctx, "deleted snapshot %s of %s", id, vm.Name)
	}
	return nil
}
