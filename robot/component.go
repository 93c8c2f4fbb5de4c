package robot

import (
	"math"

	"github.com/rs/zerolog"

	"robotscene/hal"
	"robotscene/quarkgl"
)

// Camera setup.
const (
	cameraFOV  = 75
	cameraNear = 0.1
	cameraFar  = 1000

	// Keyboard orbit steps.
	keyRotateStep = math.Pi / 36
	keyDollyStep  = 0.9
)

var cameraPosition = quarkgl.V3(15, 12, 8)

// ContainerRef holds the display a component mounts into. Current may be
// cleared by the owner at any time; Unmount then skips detaching.
type ContainerRef struct {
	Current hal.Display
}

// Options tunes a component. The zero value uses the default builder, a
// runtime-seeded random source and StarCount stars.
type Options struct {
	Builder Builder
	Random  Random
	Stars   int
	Logger  *zerolog.Logger

	// Input feeds the orbit controls; nil leaves the camera fixed.
	Input hal.Input

	// Overlay draws on the surface after every render, before Present.
	Overlay func(hal.Framebuffer)
}

// Component owns one robot scene: its camera, controls, renderer, output
// surface and render loop. Components do not share state.
type Component struct {
	ref *ContainerRef
	log zerolog.Logger

	scene    *Scene
	camera   *quarkgl.PerspectiveCamera
	controls *quarkgl.OrbitControls
	renderer *quarkgl.Renderer
	surface  hal.Framebuffer
	target   *quarkgl.RGB565Target
	loop     *Loop

	input   hal.Input
	overlay func(hal.Framebuffer)

	unmounted bool
}

// Mount builds the scene, attaches a new output surface to ref.Current and
// starts the render loop on sched. It returns nil without doing anything when
// there is no container or scheduler.
func Mount(ref *ContainerRef, sched Scheduler, opts Options) *Component {
	if ref == nil || ref.Current == nil || sched == nil {
		return nil
	}
	if opts.Builder == nil {
		opts.Builder = NewBuilder()
	}
	if opts.Random == nil {
		opts.Random = NewRandom(nil)
	}
	if opts.Stars <= 0 {
		opts.Stars = StarCount
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	// Viewport size is read once; the surface does not follow later resizes.
	w, h := ref.Current.Size()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}

	c := &Component{
		ref:     ref,
		log:     log.With().Str("component", "robot").Logger(),
		input:   opts.Input,
		overlay: opts.Overlay,
	}

	c.camera = quarkgl.NewPerspectiveCamera(cameraFOV, aspect, cameraNear, cameraFar)
	c.camera.Position = cameraPosition
	c.camera.LookAt(quarkgl.Vec3{})

	c.renderer = quarkgl.NewRenderer(w, h, true)
	c.surface = hal.NewFramebuffer(w, h)
	c.target = &quarkgl.RGB565Target{
		Buf:    c.surface.Buffer(),
		Stride: c.surface.StrideBytes(),
		W:      c.surface.Width(),
		H:      c.surface.Height(),
	}
	ref.Current.AppendChild(c.surface)

	c.scene = BuildScene(opts.Builder, opts.Random, opts.Stars)

	c.controls = quarkgl.NewOrbitControls(c.camera)
	c.controls.Update()

	c.loop = NewLoop(sched, c.scene.Robot, c.scene.Stars, c.draw)
	c.loop.Start()

	c.log.Info().
		Int("width", w).
		Int("height", h).
		Int("parts", c.scene.Robot.NumChildren()).
		Int("stars", c.scene.Stars.NumChildren()).
		Msg("mounted")
	if e := c.log.Debug(); e.Enabled() {
		lo, hi := starBounds(c.scene.Stars)
		e.Floats32("stars.min", lo[:]).Floats32("stars.max", hi[:]).Msg("star field")
	}
	return c
}

// Unmount stops the loop, releases the renderer buffers and detaches the
// surface from the container if it is still there. Repeat calls and calls on
// a nil component do nothing.
func (c *Component) Unmount() {
	if c == nil || c.unmounted {
		return
	}
	c.unmounted = true

	c.loop.Stop()
	c.renderer.Dispose()

	detached := false
	if c.ref != nil && c.ref.Current != nil {
		detached = c.ref.Current.RemoveChild(c.surface)
	}
	c.scene.Graph.Root.Dispose()

	c.log.Info().Uint64("ticks", c.loop.Ticks()).Bool("detached", detached).Msg("unmounted")
}

func (c *Component) draw() {
	c.pollInput()
	c.renderer.Render(c.target, c.scene.Graph, c.camera)
	if c.overlay != nil {
		c.overlay(c.surface)
	}
	if err := c.surface.Present(); err != nil {
		c.log.Warn().Err(err).Msg("present failed")
	}
}

// pollInput drains pending input into the orbit controls without blocking.
func (c *Component) pollInput() {
	if c.input == nil {
		return
	}
	changed := false
	vh := c.surface.Height()

	if p := c.input.Pointer(); p != nil {
	pointer:
		for {
			select {
			case ev := <-p.Events():
				c.controls.HandlePointer(ev.DX, ev.DY, vh)
				c.controls.HandleWheel(ev.Wheel)
				changed = true
			default:
				break pointer
			}
		}
	}

	if k := c.input.Keyboard(); k != nil {
	keys:
		for {
			select {
			case ev := <-k.Events():
				if ev.Press && c.handleKey(ev) {
					changed = true
				}
			default:
				break keys
			}
		}
	}

	if changed {
		c.controls.Update()
	}
}

func (c *Component) handleKey(ev hal.KeyEvent) bool {
	if ev.Rune == 'w' {
		c.toggleWireframe()
		return false
	}
	switch ev.Code {
	case hal.KeyLeft:
		c.controls.Rotate(keyRotateStep, 0)
	case hal.KeyRight:
		c.controls.Rotate(-keyRotateStep, 0)
	case hal.KeyUp:
		c.controls.Rotate(0, keyRotateStep)
	case hal.KeyDown:
		c.controls.Rotate(0, -keyRotateStep)
	case hal.KeyPageUp:
		c.controls.Dolly(keyDollyStep)
	case hal.KeyPageDown:
		c.controls.Dolly(1 / keyDollyStep)
	default:
		return false
	}
	return true
}

func (c *Component) toggleWireframe() {
	m := quarkgl.RenderWireframe
	if c.renderer.Mode == quarkgl.RenderWireframe {
		m = quarkgl.RenderSolidFlat
	}
	c.renderer.SetRenderMode(m)
	c.log.Debug().Stringer("mode", m).Msg("render mode")
}

func (c *Component) Scene() *Scene                      { return c.scene }
func (c *Component) Camera() *quarkgl.PerspectiveCamera { return c.camera }
func (c *Component) Controls() *quarkgl.OrbitControls   { return c.controls }
func (c *Component) Renderer() *quarkgl.Renderer        { return c.renderer }
func (c *Component) Surface() hal.Framebuffer           { return c.surface }
func (c *Component) Loop() *Loop                        { return c.loop }
func (c *Component) SetRenderMode(m quarkgl.RenderMode) { c.renderer.SetRenderMode(m) }

func starBounds(stars *quarkgl.Node) (lo, hi quarkgl.Vec3) {
	for i, s := range stars.Children() {
		if i == 0 {
			lo, hi = s.Position, s.Position
			continue
		}
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], s.Position[a])
			hi[a] = max(hi[a], s.Position[a])
		}
	}
	return lo, hi
}
