package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"prism/prismkit/render"
	"prism/prismkit/scene"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration. Zero fields are filled from
// DefaultConfig by Normalize.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scene  string `toml:"scene"`
	Order  string `toml:"order"`

	Headless bool   `toml:"headless"`
	Hz       int    `toml:"hz"`
	Ticks    uint64 `toml:"ticks"`
	Out      string `toml:"out"`

	// Console shows the on-screen log strip.
	Console     bool `toml:"console"`
	ConsoleRows int  `toml:"console_rows"`
	Readout     bool `toml:"readout"`

	// StatsEvery logs frame statistics every N milliseconds (0 disables).
	StatsEvery uint64 `toml:"stats_every_ms"`
}

func DefaultConfig() Config {
	return Config{
		Width:       640,
		Height:      480,
		Scene:       scene.Ball,
		Order:       render.FarthestFirst.String(),
		Hz:          60,
		Console:     true,
		ConsoleRows: 4,
		Readout:     true,
		StatsEvery:  5000,
	}
}

// LoadConfig decodes a TOML file over the defaults. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("app: config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("app: config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Normalize fills zero fields from the defaults and validates the rest.
func (c *Config) Normalize() error {
	def := DefaultConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Scene == "" {
		c.Scene = def.Scene
	}
	if c.Order == "" {
		c.Order = def.Order
	}
	if c.Hz == 0 {
		c.Hz = def.Hz
	}
	if c.ConsoleRows == 0 {
		c.ConsoleRows = def.ConsoleRows
	}

	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if c.Hz < 0 {
		errs = append(errs, fmt.Errorf("invalid hz %d", c.Hz))
	}
	if scene.Index(c.Scene) < 0 {
		errs = append(errs, fmt.Errorf("unknown scene %q (want one of %s)", c.Scene, strings.Join(scene.Names(), ", ")))
	}
	if _, err := render.ParseOrder(c.Order); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("app: config: %w", err)
	}
	return nil
}
