package config

import (
	"flag"
	"fmt"
	"strconv"
)

// Flags holds command-line overrides. Only flags that were set on the
// command line replace file values.
type Flags struct {
	Path     string
	Headless bool

	fs    *flag.FlagSet
	hz    int
	ticks uint64
	seed  string
	level string
	stars int
	hud   bool
}

// Register declares the override flags on fs.
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "YAML config file.")
	fs.BoolVar(&f.Headless, "headless", false, "Run without a window.")
	fs.IntVar(&f.hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&f.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	fs.StringVar(&f.seed, "seed", "", "Star field seed (empty = random).")
	fs.StringVar(&f.level, "log-level", "info", "Log level: trace, debug, info, warn, error.")
	fs.IntVar(&f.stars, "stars", 1000, "Number of stars.")
	fs.BoolVar(&f.hud, "hud", true, "Draw the text overlay.")
	return f
}

// Resolve loads the config file (or the defaults), applies the flags that
// were set and validates the result.
func (f *Flags) Resolve() (*Config, error) {
	var c *Config
	if f.Path != "" {
		var err error
		if c, err = Load(f.Path); err != nil {
			return nil, err
		}
	} else {
		d := Default()
		c = &d
	}
	if err := f.Apply(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply copies explicitly set flags into c.
func (f *Flags) Apply(c *Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "hz":
			c.Headless.Hz = f.hz
		case "ticks":
			c.Headless.Ticks = f.ticks
		case "log-level":
			c.Log.Level = f.level
		case "stars":
			c.Scene.Stars = f.stars
		case "hud":
			c.HUD = f.hud
		case "seed":
			if f.seed == "" {
				c.Scene.Seed = nil
				return
			}
			v, perr := strconv.ParseUint(f.seed, 0, 64)
			if perr != nil {
				err = fmt.Errorf("%w: seed %q: %v", ErrInvalid, f.seed, perr)
				return
			}
			c.Scene.Seed = &v
		}
	})
	return err
}
