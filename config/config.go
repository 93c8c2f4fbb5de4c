package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
}

type Headless struct {
	Hz    int    `yaml:"hz"`
	Ticks uint64 `yaml:"ticks"` // 0 runs until interrupted
}

type Scene struct {
	Stars int     `yaml:"stars"`
	Seed  *uint64 `yaml:"seed,omitempty"` // nil seeds from the runtime
}

type Log struct {
	Level string `yaml:"level"` // zerolog level name
}

type Config struct {
	Window   Window   `yaml:"window"`
	Headless Headless `yaml:"headless"`
	Scene    Scene    `yaml:"scene"`
	HUD      bool     `yaml:"hud"`
	Log      Log      `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window:   Window{Title: "robotscene", Width: 960, Height: 640, Scale: 1},
		Headless: Headless{Hz: 60},
		Scene:    Scene{Stars: 1000},
		HUD:      true,
		Log:      Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values. The result is validated.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	case c.Headless.Hz <= 0:
		return fmt.Errorf("%w: headless hz %d", ErrInvalid, c.Headless.Hz)
	case c.Scene.Stars < 0:
		return fmt.Errorf("%w: negative star count %d", ErrInvalid, c.Scene.Stars)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Level parses Log.Level. An empty level means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(c.Log.Level))
}
