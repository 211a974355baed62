package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gonewx/aseanim/pkg/game"
)

const libraryAppName = "aseanim"

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <sheet.json>...",
		Short: "Copy sheets into the per-user sheet library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := game.OpenSheetLibrary(libraryAppName)
			if err != nil {
				return err
			}

			for _, sheetPath := range args {
				name, err := lib.ImportSheet(sheetPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", name)
			}
			return nil
		},
	}
}
