package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gonewx/aseanim/pkg/store"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <resource-file>",
		Short: "List the animations stored in a resource file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rf, err := store.Open(args[0])
			if err != nil {
				return err
			}
			defer rf.Close()

			rendered, err := renderResourceFile(rf, isTerminal(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func renderResourceFile(rf *store.ResourceFile, fancy bool) (string, error) {
	names, err := rf.ListAnimations()
	if err != nil {
		return "", err
	}

	var rows [][]string
	for _, name := range names {
		rec, err := rf.GetAnimation(name)
		if err != nil {
			return "", err
		}
		for _, s := range rec.States {
			rows = append(rows, []string{name, rec.Image, s.Name, s.Direction, strconv.Itoa(len(s.Frames))})
		}
	}

	headers := []string{"Animation", "Image", "State", "Direction", "Frames"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}
	return renderTable(headers, rows, aligns, fancy), nil
}
