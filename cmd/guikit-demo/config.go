package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/guikit"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(newConfigPrintCmd(flags))
	cmd.AddCommand(newConfigThemesCmd())
	return cmd
}

func newConfigPrintCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the merged defaults, file and environment as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}

func newConfigThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the accepted style.theme values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range guikit.StyleNames() {
				cmd.Println(name)
			}
		},
	}
}
