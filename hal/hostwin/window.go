//go:build cgo

// Package hostwin shows a hal.Host in a desktop window.
package hostwin

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"robotscene/hal"
)

// Run opens a window that composites the host display and forwards input.
// It blocks until the window closes or Escape is pressed, then closes the app.
func Run(h *hal.Host, newApp func(hal.HAL) (hal.App, error), opts Options) error {
	opts = opts.withDefaults()

	app, err := newApp(h)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer app.Close()

	w, hh := h.Display().Size()
	g := &game{h: h, app: app, layers: make(map[hal.Framebuffer]*layer)}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w*opts.Scale, hh*opts.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(opts.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type layer struct {
	img     *ebiten.Image
	rgba    []byte
	scratch []byte
	seen    bool
}

type game struct {
	h      *hal.Host
	app    hal.App
	ptr    pointerState
	layers map[hal.Framebuffer]*layer
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ptr.poll(g.h.InputQueue())
	pollKeys(g.h.InputQueue())

	if err := g.app.Update(); err != nil {
		return err
	}
	g.h.Frames().RunFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, l := range g.layers {
		l.seen = false
	}
	for _, fb := range g.h.Container().Children() {
		l := g.layerFor(fb)
		l.seen = true
		fb.Snapshot(l.scratch)
		hal.ExpandRGB565(l.rgba, l.scratch)
		l.img.WritePixels(l.rgba)
		screen.DrawImage(l.img, nil)
	}
	for fb, l := range g.layers {
		if l.seen {
			continue
		}
		l.img.Deallocate()
		delete(g.layers, fb)
	}
}

func (g *game) layerFor(fb hal.Framebuffer) *layer {
	if l, ok := g.layers[fb]; ok {
		return l
	}
	w, h := fb.Width(), fb.Height()
	l := &layer{
		img:     ebiten.NewImage(w, h),
		rgba:    make([]byte, w*h*4),
		scratch: make([]byte, fb.StrideBytes()*h),
	}
	g.layers[fb] = l
	return l
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.Display().Size()
}
