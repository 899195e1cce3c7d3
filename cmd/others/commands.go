package others

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Actions defines service-level and utility operations.
type Actions interface {
	InstallLicense(cmd *cobra.Command, args []string) error
	Version(cmd *cobra.Command, args []string) error
}

// Commands builds the system command set (license, version, completion).
func Commands(h Actions) []*cobra.Command {
	licenseCmd := &cobra.Command{
		Use:   "license",
		Short: "Manage the Parallels Desktop license",
	}
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install and activate a license key",
		RunE:  h.InstallLicense,
	}
	installCmd.Flags().String("key", "", "license key")
	installCmd.Flags().String("company", "", "company name")
	_ = installCmd.MarkFlagRequired("key")
	licenseCmd.AddCommand(installCmd)

	return []*cobra.Command{
		licenseCmd,
		{
			Use:   "version",
			Short: "Show version, git revision, and build timestamp",
			RunE:  h.Version,
		},
		{
			Use:       "completion [bash|zsh|fish|powershell]",
			Short:     "Generate shell completion script",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
			RunE: func(cmd *cobra.Command, args []string) error {
				root := cmd.Root()
				switch args[0] {
				case "bash":
					return root.GenBashCompletion(os.Stdout)
				case "zsh":
					return root.GenZshCompletion(os.Stdout)
				case "fish":
					return root.GenFishCompletion(os.Stdout, true)
				case "powershell":
					return root.GenPowerShellCompletionWithDesc(os.Stdout)
				default:
					return fmt.Errorf("unsupported shell: %s", args[0])
				}
			},
		},
	}
}
