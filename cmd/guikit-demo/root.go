package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/shell"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "guikit-demo",
		Short:         "Interactive showcase of guikit elements in a docking shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			guikit.SetVerbose(flags.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (GUIKIT_* env vars override it)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newScreenshotCmd(flags))

	return cmd
}

func loadConfig(flags *rootFlags) (shell.Config, error) {
	return shell.LoadConfig(flags.configPath)
}
