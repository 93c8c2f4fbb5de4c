// Command mkshot renders the scene offscreen and writes the last frame as a
// PNG. With -config-out it also writes the resolved configuration as YAML.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"robotscene/config"
	"robotscene/hal"
	"robotscene/robot"
)

const defaultShotPath = "robot.png"

func main() {
	fs := flag.NewFlagSet("mkshot", flag.ExitOnError)
	flags := config.Register(fs)
	var outPath, cfgOut string
	fs.StringVar(&outPath, "out", defaultShotPath, "Output PNG path.")
	fs.StringVar(&cfgOut, "config-out", "", "Also write the resolved config to this YAML path.")
	_ = fs.Parse(os.Args[1:])

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if cfgOut != "" {
		if err := config.Save(cfgOut, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	ticks := cfg.Headless.Ticks
	if ticks == 0 {
		ticks = 1
	}
	if err := run(cfg, ticks, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, ticks uint64, outPath string) error {
	container := hal.NewContainer(cfg.Window.Width, cfg.Window.Height)
	frames := hal.NewFrameQueue()
	c := robot.Mount(&robot.ContainerRef{Current: container}, frames, robot.Options{
		Random: robot.NewRandom(cfg.Scene.Seed),
		Stars:  cfg.Scene.Stars,
	})
	if c == nil {
		return fmt.Errorf("mount: empty viewport %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	defer c.Unmount()

	for i := uint64(0); i < ticks; i++ {
		frames.RunFrame()
	}

	img := snapshot(c.Surface())
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	return f.Close()
}

func snapshot(fb hal.Framebuffer) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	src := make([]byte, fb.StrideBytes()*h)
	fb.Snapshot(src)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	hal.ExpandRGB565(img.Pix, src)
	return img
}
