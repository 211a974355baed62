package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gonewx/aseanim/internal/aseprite"
)

func newInspectCommand() *cobra.Command {
	var stateName string

	cmd := &cobra.Command{
		Use:   "inspect <sheet.json>",
		Short: "Validate a sheet and list its states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anim, err := loadSheetFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fancy := isTerminal(out)
			if stateName == "" {
				fmt.Fprintf(out, "Image: %s\n", anim.ImageRef)
				fmt.Fprintln(out, renderStates(anim, fancy))
				return nil
			}

			rendered, err := renderFrames(anim, stateName, fancy)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&stateName, "state", "s", "", "List the frames of one state")
	return cmd
}

func loadSheetFile(path string) (*aseprite.Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", path, err)
	}
	defer f.Close()

	anim, err := aseprite.Load(f, aseprite.Options{})
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	return anim, nil
}

// renderStates prints one row per state in name order.
func renderStates(anim *aseprite.Animation, fancy bool) string {
	headers := []string{"State", "Direction", "Frames", "Duration", "Color"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, anim.Len())
	for _, name := range anim.Names() {
		state, _ := anim.State(name)
		rows = append(rows, []string{
			name,
			state.Direction.String(),
			strconv.Itoa(state.Len()),
			state.TotalDuration().String(),
			formatColor(state.Color, fancy),
		})
	}
	return renderTable(headers, rows, aligns, fancy)
}

func renderFrames(anim *aseprite.Animation, stateName string, fancy bool) (string, error) {
	state, ok := anim.State(stateName)
	if !ok {
		return "", fmt.Errorf("state '%s' not found (have %v)", stateName, anim.Names())
	}

	headers := []string{"#", "X", "Y", "W", "H", "Duration"}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, state.Len())
	for i, r := range state.Layout().Rects() {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(r.Min.X),
			strconv.Itoa(r.Min.Y),
			strconv.Itoa(r.Dx()),
			strconv.Itoa(r.Dy()),
			state.FrameDuration(i).String(),
		})
	}
	return renderTable(headers, rows, aligns, fancy), nil
}

// formatColor prints #rrggbbaa, prefixed by a truecolor swatch on terminals.
func formatColor(c aseprite.Color, swatch bool) string {
	n := c.NRGBA()
	hex := fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
	if !swatch {
		return hex
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s", n.R, n.G, n.B, hex)
}
