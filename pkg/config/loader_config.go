package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoaderConfig lists the sprite sheets a project ships and where packed output goes.
//
// Example:
//
//	asset_root: assets
//	resource_file: build/sprites.res
//	sheets:
//	  - name: hero
//	    path: sheets/hero.json
//	    default_state: idle
type LoaderConfig struct {
	// AssetRoot is the directory sheet paths are relative to
	AssetRoot string `yaml:"asset_root"`

	// ResourceFile is where `aseinfo pack` writes the bbolt resource file
	ResourceFile string `yaml:"resource_file,omitempty"`

	// LoopByDefault applies to sheets without their own loop setting (default true)
	LoopByDefault *bool `yaml:"loop_by_default,omitempty"`

	Sheets []SheetEntry `yaml:"sheets"`
}

// SheetEntry is one sprite sheet export.
type SheetEntry struct {
	// Name is the key the sheet is stored and looked up under
	Name string `yaml:"name"`

	// Path is the sheet JSON path relative to AssetRoot, slash separated
	Path string `yaml:"path"`

	// DefaultState is played first by the viewer (optional)
	DefaultState string `yaml:"default_state,omitempty"`

	Loop *bool `yaml:"loop,omitempty"`
}

// LoadLoaderConfig loads a loader configuration from a YAML file.
//
// Parameters:
//   - path: Config file path
//
// Returns:
//   - *LoaderConfig: The validated configuration
//   - error: Read, parse or validation error
func LoadLoaderConfig(path string) (*LoaderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := ParseLoaderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseLoaderConfig parses and validates YAML config bytes.
func ParseLoaderConfig(data []byte) (*LoaderConfig, error) {
	var cfg LoaderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateLoaderConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if cfg.AssetRoot == "" {
		cfg.AssetRoot = "."
	}
	return &cfg, nil
}

func validateLoaderConfig(cfg *LoaderConfig) error {
	if len(cfg.Sheets) == 0 {
		return fmt.Errorf("no sheets configured")
	}

	seen := make(map[string]bool, len(cfg.Sheets))
	for i, sheet := range cfg.Sheets {
		if sheet.Name == "" {
			return fmt.Errorf("sheet #%d is missing 'name'", i)
		}
		if seen[sheet.Name] {
			return fmt.Errorf("duplicate sheet name '%s'", sheet.Name)
		}
		seen[sheet.Name] = true

		if sheet.Path == "" {
			return fmt.Errorf("sheet '%s' is missing 'path'", sheet.Name)
		}
		if strings.Contains(sheet.Path, "\\") || path.IsAbs(sheet.Path) {
			return fmt.Errorf("sheet '%s' path '%s' must be relative and slash separated", sheet.Name, sheet.Path)
		}
		if clean := path.Clean(sheet.Path); clean == ".." || strings.HasPrefix(clean, "../") {
			return fmt.Errorf("sheet '%s' path '%s' leaves the asset root", sheet.Name, sheet.Path)
		}
	}

	return nil
}

// Sheet looks up a sheet entry by name.
func (c *LoaderConfig) Sheet(name string) (SheetEntry, bool) {
	for _, s := range c.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetEntry{}, false
}

// ShouldLoop resolves the loop setting of a sheet.
func (c *LoaderConfig) ShouldLoop(sheet SheetEntry) bool {
	if sheet.Loop != nil {
		return *sheet.Loop
	}
	if c.LoopByDefault != nil {
		return *c.LoopByDefault
	}
	return true
}
