// internal/config/config.go
//
// Runtime configuration for depgraph. Projects can drop a .depgraph.yaml
// next to their deps file to override the defaults; everything works with
// no config file at all.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file depgraph looks for in the working
// directory when no --config flag is given.
const DefaultFileName = ".depgraph.yaml"

// Colors maps each task status to a Graphviz fill color.
type Colors struct {
	Complete string `yaml:"complete"`
	Awaiting string `yaml:"awaiting"`
	Ready    string `yaml:"ready"`
	Blocked  string `yaml:"blocked"`
}

// Config models .depgraph.yaml.
type Config struct {
	// DepsFile is the outline export read when no path is given on the
	// command line.
	DepsFile string `yaml:"deps_file"`

	// AwaitingPrefix marks tasks blocked on an external event. Matching is
	// case-insensitive against the leading-whitespace-trimmed task name.
	AwaitingPrefix string `yaml:"awaiting_prefix"`

	// IndentWidth is how many leading spaces make one outline level.
	IndentWidth int `yaml:"indent_width"`

	// WrapWidth is the column at which comment text wraps in DOT labels.
	WrapWidth int `yaml:"wrap_width"`

	Colors Colors `yaml:"colors"`
}

// Default returns the compiled-in configuration: finished work grey,
// external waits blue, actionable work green, everything else plain.
func Default() Config {
	return Config{
		DepsFile:       "deps.txt",
		AwaitingPrefix: "await",
		IndentWidth:    2,
		WrapWidth:      30,
		Colors: Colors{
			Complete: "lightgrey",
			Awaiting: "lightblue",
			Ready:    "green",
			Blocked:  "white",
		},
	}
}

// Load reads and validates a config file. Keys absent from the file keep
// their default values, so a partial config is fine.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads DefaultFileName from the working directory if it exists,
// otherwise returns the defaults. Only an unreadable or invalid file is an
// error; absence is the common case.
func Discover() (Config, error) {
	cfg, err := Load(DefaultFileName)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DepsFile) == "" {
		return errors.New("deps_file cannot be empty")
	}
	if c.IndentWidth < 1 {
		return fmt.Errorf("indent_width must be at least 1, got %d", c.IndentWidth)
	}
	if c.WrapWidth < 1 {
		return fmt.Errorf("wrap_width must be at least 1, got %d", c.WrapWidth)
	}
	for _, pair := range []struct {
		key   string
		value string
	}{
		{"complete", c.Colors.Complete},
		{"awaiting", c.Colors.Awaiting},
		{"ready", c.Colors.Ready},
		{"blocked", c.Colors.Blocked},
	} {
		if strings.TrimSpace(pair.value) == "" {
			return fmt.Errorf("colors.%s cannot be empty", pair.key)
		}
	}
	return nil
}
