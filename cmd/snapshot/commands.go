package snapshot

import "github.com/spf13/cobra"

// Actions defines snapshot operations.
type Actions interface {
	List(cmd *cobra.Command, args []string) error
	Delete(cmd *cobra.Command, args []string) error
}

// Command builds the "snapshot" parent command.
func Command(h Actions) *cobra.Command {
	snapCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage VM snapshots",
	}
	snapCmd.AddCommand(
		&cobra.Command{
			Use:     "list VM",
			Aliases: []string{"ls"},
			Short:   "List snapshots of a VM",
			Args:    cobra.ExactArgs(1),
			RunE:    h.List,
		},
		&cobra.Command{
			Use:   "delete VM SNAPSHOT [SNAPSHOT...]",
			Short: "Delete snapshot(s) of a VM",
			Args:  cobra.MinimumNArgs(2), //nolint:mnd
			RunE:  h.Delete,
		},
	)
	return snapCmd
}
