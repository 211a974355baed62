package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "aseinfo",
		Short:         "Aseprite sprite sheet tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Loader configuration file (default sprites.yaml)")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newPackCommand(ctx))
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
