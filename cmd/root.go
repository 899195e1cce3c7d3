package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/projecteru2/core/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdcore "github.com/cocoonstack/prlctl/cmd/core"
	cmdothers "github.com/cocoonstack/prlctl/cmd/others"
	cmdsnapshot "github.com/cocoonstack/prlctl/cmd/snapshot"
	cmdvm "github.com/cocoonstack/prlctl/cmd/vm"
	"github.com/cocoonstack/prlctl/config"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prlctl-go",
		Short: "Typed client for the Parallels Desktop command-line tools",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmdcore.CommandContext(cmd))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().String("prlctl", "", "prlctl binary")
	cmd.PersistentFlags().String("prlsrvctl", "", "prlsrvctl binary")
	cmd.PersistentFlags().Int("timeout", 0, "per-command timeout in seconds (0 = none)")
	cmd.PersistentFlags().String("lock-file", "", "serialize operations across processes with this lock file")

	_ = viper.BindPFlag("prlctl_binary", cmd.PersistentFlags().Lookup("prlctl"))
	_ = viper.BindPFlag("prlsrvctl_binary", cmd.PersistentFlags().Lookup("prlsrvctl"))
	_ = viper.BindPFlag("command_timeout_seconds", cmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("lock_file", cmd.PersistentFlags().Lookup("lock-file"))

	viper.SetEnvPrefix("PRLCTL")
	viper.AutomaticEnv()

	confProvider := func() *config.Config { return conf }
	base := cmdcore.BaseHandler{ConfProvider: confProvider}

	cmd.AddCommand(cmdvm.Command(cmdvm.Handler{BaseHandler: base}))
	cmd.AddCommand(cmdsnapshot.Command(cmdsnapshot.Handler{BaseHandler: base}))
	for _, c := range cmdothers.Commands(cmdothers.Handler{BaseHandler: base}) {
		cmd.AddCommand(c)
	}

	return cmd
}()

func initConfig(ctx context.Context) error {
	conf = config.DefaultConfig()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	_ = viper.ReadInConfig() // optional; missing file is OK

	if err := viper.Unmarshal(conf); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if conf.PoolSize <= 0 {
		conf.PoolSize = runtime.NumCPU()
	}
	if conf.PrlctlBinary == "" {
		conf.PrlctlBinary = "prlctl"
	}
	if conf.PrlsrvctlBinary == "" {
		conf.PrlsrvctlBinary = "prlsrvctl"
	}

	return log.SetupLog(ctx, &conf.Log, "")
}

// Execute is the main entry point called from main.go.
func Execute() error {
	ctx, cancel := newCommandContext()
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}
