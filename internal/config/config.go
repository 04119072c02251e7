// Package config provides the configuration of the stoich command.
package config

import (
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed defaults.toml
var defaultsTOML string

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config contains the settings of the stoich command. Command line flags
// override the values read here.
type Config struct {
	// Reference is the periodic table file. Empty means the built-in table.
	Reference string `toml:"reference"`

	// Workers is the number of goroutines used for batches of formulas.
	Workers int `toml:"workers"`

	// Output is "text" or "json".
	Output string `toml:"output"`

	// PlotDir is where mass-fraction plots are written. Empty disables plots.
	PlotDir string `toml:"plot_dir"`

	PlotWidthCm  float64 `toml:"plot_width_cm"`
	PlotHeightCm float64 `toml:"plot_height_cm"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg := new(Config)
	if _, err := toml.Decode(defaultsTOML, cfg); err != nil {
		return nil, fmt.Errorf("parsing default config: %w", err)
	}
	return cfg, nil
}

// Load returns the built-in configuration overlaid with the values in the TOML
// file at path. An empty path returns the built-in configuration.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config %s: ignoring unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values are usable.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, not %q", OutputText, OutputJSON, c.Output)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers can't be negative (%d)", c.Workers)
	}
	if c.PlotWidthCm <= 0 || c.PlotHeightCm <= 0 {
		return fmt.Errorf("plot sizes must be positive (%gx%g cm)", c.PlotWidthCm, c.PlotHeightCm)
	}
	return nil
}
