package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 960, c.Window.Width)
	assert.Equal(t, 640, c.Window.Height)
	assert.Equal(t, 1000, c.Scene.Stars)
	assert.Nil(t, c.Scene.Seed)
	assert.True(t, c.HUD)
}

func TestLoadOverDefaults(t *testing.T) {
	p := writeFile(t, `
window:
  width: 320
scene:
  seed: 42
hud: false
log:
  level: DEBUG
`)
	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 320, c.Window.Width)
	assert.Equal(t, 640, c.Window.Height)
	assert.Equal(t, 1000, c.Scene.Stars)
	require.NotNil(t, c.Scene.Seed)
	assert.EqualValues(t, 42, *c.Scene.Seed)
	assert.False(t, c.HUD)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "window: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "scene:\n  stars: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"width":  func(c *Config) { c.Window.Width = 0 },
		"height": func(c *Config) { c.Window.Height = -4 },
		"scale":  func(c *Config) { c.Window.Scale = 0 },
		"hz":     func(c *Config) { c.Headless.Hz = 0 },
		"stars":  func(c *Config) { c.Scene.Stars = -1 },
		"level":  func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	seed := uint64(7)
	c := Default()
	c.Scene.Seed = &seed
	c.Window.Title = "bots"

	p := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(p, &c))
	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, c, *got)
}

func TestFlagsOverrideFile(t *testing.T) {
	p := writeFile(t, "headless:\n  hz: 30\n  ticks: 5\nscene:\n  stars: 10\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Register(fs)
	require.NoError(t, fs.Parse([]string{"-config", p, "-headless", "-ticks", "9", "-seed", "0x10"}))

	c, err := f.Resolve()
	require.NoError(t, err)
	assert.True(t, f.Headless)
	assert.Equal(t, 30, c.Headless.Hz, "unset flag keeps file value")
	assert.EqualValues(t, 9, c.Headless.Ticks)
	assert.Equal(t, 10, c.Scene.Stars)
	require.NotNil(t, c.Scene.Seed)
	assert.EqualValues(t, 16, *c.Scene.Seed)
}

func TestFlagsWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Register(fs)
	require.NoError(t, fs.Parse([]string{"-hud=false", "-log-level", "warn"}))

	c, err := f.Resolve()
	require.NoError(t, err)
	assert.False(t, c.HUD)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, 960, c.Window.Width)
}

func TestFlagsRejectBadValues(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Register(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "abc"}))
	_, err := f.Resolve()
	assert.ErrorIs(t, err, ErrInvalid)

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	f = Register(fs)
	require.NoError(t, fs.Parse([]string{"-stars", "-3"}))
	_, err = f.Resolve()
	assert.ErrorIs(t, err, ErrInvalid)
}
