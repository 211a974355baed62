package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gonewx/aseanim/internal/aseprite"
	"github.com/gonewx/aseanim/pkg/config"
	"github.com/gonewx/aseanim/pkg/store"
)

func newPackCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Build every configured sheet into a resource file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := outFlag
			if out == "" {
				out = cfg.ResourceFile
			}
			if out == "" {
				return fmt.Errorf("no output: set resource_file in %s or pass --out", ctx.configPath())
			}

			layouts, err := packSheets(cfg, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Packed %d sheets (%d layouts) into %s\n", len(cfg.Sheets), layouts, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Resource file to write (overrides resource_file)")
	return cmd
}

// packSheets builds every sheet of cfg and stores it with its image in the
// resource file at out. It returns the number of layouts registered.
func packSheets(cfg *config.LoaderConfig, out string) (int, error) {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	rf, err := store.Open(out)
	if err != nil {
		return 0, err
	}
	defer rf.Close()

	layouts := aseprite.NewLayoutStore()
	for _, entry := range cfg.Sheets {
		sheetPath := filepath.Join(cfg.AssetRoot, filepath.FromSlash(entry.Path))

		f, err := os.Open(sheetPath)
		if err != nil {
			return 0, fmt.Errorf("sheet '%s': %w", entry.Name, err)
		}
		anim, err := aseprite.Load(f, aseprite.Options{Registry: layouts})
		f.Close()
		if err != nil {
			return 0, fmt.Errorf("sheet '%s': %w", entry.Name, err)
		}

		if entry.DefaultState != "" {
			if _, ok := anim.State(entry.DefaultState); !ok {
				return 0, fmt.Errorf("sheet '%s': default state '%s' not found", entry.Name, entry.DefaultState)
			}
		}

		imageRef := path.Join(path.Dir(entry.Path), anim.ImageRef)
		imageData, err := os.ReadFile(filepath.Join(cfg.AssetRoot, filepath.FromSlash(imageRef)))
		if err != nil {
			return 0, fmt.Errorf("sheet '%s': failed to read image: %w", entry.Name, err)
		}
		if err := rf.PutImage(imageRef, imageData); err != nil {
			return 0, err
		}
		if err := rf.PutAnimation(entry.Name, anim); err != nil {
			return 0, err
		}
	}

	return layouts.Len(), nil
}
