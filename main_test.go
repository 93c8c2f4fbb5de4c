package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotscene/config"
)

func TestRunHeadless(t *testing.T) {
	err := run([]string{"-headless", "-hz", "500", "-ticks", "3", "-stars", "5", "-seed", "1", "-log-level", "warn"})
	assert.NoError(t, err)
}

func TestRunHeadlessWithConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "scene.yaml")
	c := config.Default()
	c.Window.Width, c.Window.Height = 32, 24
	c.Headless.Ticks = 2
	c.Headless.Hz = 500
	c.Scene.Stars = 3
	c.Log.Level = "error"
	require.NoError(t, config.Save(p, &c))

	assert.NoError(t, run([]string{"-config", p, "-headless"}))
}

func TestRunRejectsBadConfig(t *testing.T) {
	err := run([]string{"-headless", "-log-level", "loud"})
	assert.ErrorIs(t, err, config.ErrInvalid)

	err = run([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunHelp(t *testing.T) {
	assert.NoError(t, run([]string{"-h"}))
}
