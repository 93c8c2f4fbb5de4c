package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotscene/config"
)

func TestRunWritesPNG(t *testing.T) {
	seed := uint64(3)
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 40, 30
	cfg.Scene.Stars = 10
	cfg.Scene.Seed = &seed

	out := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, run(&cfg, 2, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	_, _, _, a := img.At(20, 15).RGBA()
	assert.EqualValues(t, 0xFFFF, a)
}
