package main

import (
	"fmt"
	"os"

	"github.com/gonewx/aseanim/pkg/config"
	"github.com/gonewx/aseanim/pkg/embedded"
	"github.com/gonewx/aseanim/pkg/game"
	"github.com/gonewx/aseanim/pkg/utils"
)

const (
	libraryAppName   = "aseanim"
	defaultSheetPath = "sheets/hero.json"
)

// sheetChoice is where the viewer reads its sheet from and how it plays it.
type sheetChoice struct {
	source utils.SheetSource
	name   string
	state  string
	loop   bool
}

// chooseSheet resolves the command line into a sheet source. The library wins
// over a config file; without either the embedded sample assets are used.
func chooseSheet(configPath, sheet, state string, library bool) (sheetChoice, error) {
	switch {
	case library:
		if sheet == "" {
			return sheetChoice{}, fmt.Errorf("-library needs -sheet")
		}
		lib, err := game.OpenSheetLibrary(libraryAppName)
		if err != nil {
			return sheetChoice{}, err
		}
		if !lib.Has(sheet) {
			return sheetChoice{}, fmt.Errorf("sheet %s was never imported", sheet)
		}
		return sheetChoice{source: lib, name: sheet, state: state, loop: true}, nil

	case configPath != "":
		cfg, err := config.LoadLoaderConfig(configPath)
		if err != nil {
			return sheetChoice{}, err
		}
		return chooseFromConfig(cfg, utils.FSSource{FS: os.DirFS(cfg.AssetRoot)}, sheet, state)

	default:
		assets, err := embedded.Sub("assets")
		if err != nil {
			return sheetChoice{}, err
		}
		if sheet == "" {
			sheet = defaultSheetPath
		}
		return sheetChoice{source: utils.FSSource{FS: assets}, name: sheet, state: state, loop: true}, nil
	}
}

func chooseFromConfig(cfg *config.LoaderConfig, source utils.SheetSource, sheet, state string) (sheetChoice, error) {
	entry := cfg.Sheets[0]
	if sheet != "" {
		var ok bool
		if entry, ok = cfg.Sheet(sheet); !ok {
			return sheetChoice{}, fmt.Errorf("sheet '%s' is not in the config", sheet)
		}
	}
	if state == "" {
		state = entry.DefaultState
	}
	return sheetChoice{source: source, name: entry.Path, state: state, loop: cfg.ShouldLoop(entry)}, nil
}
