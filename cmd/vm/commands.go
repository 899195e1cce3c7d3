package vm

import "github.com/spf13/cobra"

// Actions defines VM lifecycle operations.
type Actions interface {
	List(cmd *cobra.Command, args []string) error
	Inspect(cmd *cobra.Command, args []string) error
	Start(cmd *cobra.Command, args []string) error
	Stop(cmd *cobra.Command, args []string) error
	Clone(cmd *cobra.Command, args []string) error
	Clean(cmd *cobra.Command, args []string) error
	Rename(cmd *cobra.Command, args []string) error
	Set(cmd *cobra.Command, args []string) error
	Exec(cmd *cobra.Command, args []string) error
	RM(cmd *cobra.Command, args []string) error
	Unregister(cmd *cobra.Command, args []string) error
	Register(cmd *cobra.Command, args []string) error
	Import(cmd *cobra.Command, args []string) error
	Unpack(cmd *cobra.Command, args []string) error
}

// Command builds the "vm" parent command with all subcommands.
func Command(h Actions) *cobra.Command {
	vmCmd := &cobra.Command{
		Use:   "vm",
		Short: "Manage virtual machines",
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List VMs with status",
		RunE:    h.List,
	}
	listCmd.Flags().String("status", "", "only show VMs in this status")

	inspectCmd := &cobra.Command{
		Use:   "inspect VM",
		Short: "Show VM info (JSON)",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Inspect,
	}

	startCmd := &cobra.Command{
		Use:   "start VM [VM...]",
		Short: "Start stopped VM(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  h.Start,
	}
	startCmd.Flags().Bool("wait", true, "wait for the guest OS to boot (--wait=false to return once the VM is powered on)")
	startCmd.Flags().Duration("wait-ip", 0, "after starting, wait up to this long for each VM to report an IP")

	stopCmd := &cobra.Command{
		Use:   "stop VM [VM...]",
		Short: "Stop running VM(s)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  h.Stop,
	}
	stopCmd.Flags().Bool("fast", false, "power off without a guest shutdown")

	cloneCmd := &cobra.Command{
		Use:   "clone VM NAME",
		Short: "Clone a stopped VM",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE:  h.Clone,
	}
	cloneCmd.Flags().Bool("full", false, "make a full copy instead of a linked clone")

	cleanCmd := &cobra.Command{
		Use:   "clean VM",
		Short: "Delete every snapshot of a VM",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Clean,
	}

	renameCmd := &cobra.Command{
		Use:   "rename VM NAME",
		Short: "Rename a VM",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE:  h.Rename,
	}

	setCmd := &cobra.Command{
		Use:   "set [flags] VM",
		Short: "Change VM settings",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Set,
	}
	addSetFlags(setCmd)

	execCmd := &cobra.Command{
		Use:   "exec [flags] VM -- COMMAND",
		Short: "Run a command inside a running VM",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd
		RunE:  h.Exec,
	}
	execCmd.Flags().String("user", "root", "guest user to run as")

	rmCmd := &cobra.Command{
		Use:   "rm [flags] VM [VM...]",
		Short: "Delete VM(s) and their files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  h.RM,
	}
	rmCmd.Flags().Bool("force", false, "do not ask for confirmation")

	unregisterCmd := &cobra.Command{
		Use:   "unregister VM [VM...]",
		Short: "Remove VM(s) from the inventory, keeping files on disk",
		Args:  cobra.MinimumNArgs(1),
		RunE:  h.Unregister,
	}

	registerCmd := &cobra.Command{
		Use:   "register PATH",
		Short: "Register a VM bundle under a new uuid",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Register,
	}

	importCmd := &cobra.Command{
		Use:   "import PATH",
		Short: "Register a VM bundle and print the new VM",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Import,
	}

	unpackCmd := &cobra.Command{
		Use:   "unpack VM",
		Short: "Unpack a packaged (.pvmp) VM",
		Args:  cobra.ExactArgs(1),
		RunE:  h.Unpack,
	}

	vmCmd.AddCommand(
		listCmd,
		inspectCmd,
		startCmd,
		stopCmd,
		cloneCmd,
		cleanCmd,
		renameCmd,
		setCmd,
		execCmd,
		rmCmd,
		unregisterCmd,
		registerCmd,
		importCmd,
		unpackCmd,
	)
	return vmCmd
}

func addSetFlags(cmd *cobra.Command) {
	cmd.Flags().Int("cpus", 0, "number of virtual CPUs")
	cmd.Flags().String("memsize", "", "guest memory (e.g. 8G, 4096)")
	cmd.Flags().String("hypervisor-type", "", "hypervisor type (parallels|apple)")
	cmd.Flags().String("network", "", "network type (shared|bridged|host-only)")
	cmd.Flags().String("network-iface", "net0", "network adapter for --network")
	cmd.Flags().Bool("smart-mount", false, "enable smart mount")
	cmd.Flags().Bool("shared-clipboard", false, "enable shared clipboard")
	cmd.Flags().Bool("shared-cloud", false, "enable shared cloud")
	cmd.Flags().Bool("shared-profile", false, "enable shared profile")
	cmd.Flags().Bool("shared-camera", false, "auto-share the camera")
	cmd.Flags().Bool("shared-bluetooth", false, "auto-share bluetooth devices")
	cmd.Flags().Bool("shared-smartcard", false, "auto-share smart card readers")
	cmd.Flags().Bool("isolate", false, "isolate the VM from the host")
	cmd.Flags().Bool("no-sound", false, "remove the sound device")
	cmd.Flags().Bool("no-cdrom", false, "remove the CD/DVD drive")
}
