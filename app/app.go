package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"robotscene/config"
	"robotscene/hal"
	"robotscene/robot"
)

var (
	ErrNoDisplay = errors.New("no display")
	ErrPanicked  = errors.New("frame panicked")
)

type Options struct {
	// ExitOnPanic makes Update fail after a frame panic. Otherwise the panic
	// screen stays up until the runner exits.
	ExitOnPanic bool
}

// Scene mounts one robot component into the host display and tears it down
// on Close.
type Scene struct {
	h    hal.HAL
	log  zerolog.Logger
	opts Options

	ref  *robot.ContainerRef
	comp *robot.Component
	hud  *hud

	panicked error
}

var _ hal.App = (*Scene)(nil)

// New mounts the scene described by cfg.
func New(h hal.HAL, cfg config.Config, opts Options) (*Scene, error) {
	disp := h.Display()
	if disp == nil {
		return nil, ErrNoDisplay
	}
	log := zerolog.Nop()
	if l := h.Logger(); l != nil {
		log = *l
	}

	s := &Scene{
		h:    h,
		log:  log,
		opts: opts,
		ref:  &robot.ContainerRef{Current: disp},
	}
	if cfg.HUD {
		s.hud = newHUD()
	}

	ro := robot.Options{
		Random: robot.NewRandom(cfg.Scene.Seed),
		Stars:  cfg.Scene.Stars,
		Logger: &s.log,
		Input:  h.Input(),
	}
	if s.hud != nil {
		ro.Overlay = func(fb hal.Framebuffer) { s.hud.draw(fb, s.comp) }
	}

	h.Frames().SetPanicHandler(s.onPanic)
	s.comp = robot.Mount(s.ref, h.Frames(), ro)
	if s.comp == nil {
		return nil, fmt.Errorf("mount robot: %w", ErrNoDisplay)
	}

	ev := s.log.Info().Bool("hud", cfg.HUD)
	if cfg.Scene.Seed != nil {
		ev = ev.Uint64("seed", *cfg.Scene.Seed)
	}
	ev.Msg("scene ready")
	return s, nil
}

// Update reports a recovered frame panic when ExitOnPanic is set.
func (s *Scene) Update() error {
	if s.panicked != nil && s.opts.ExitOnPanic {
		return s.panicked
	}
	return nil
}

// Close unmounts the component. It is safe to call more than once.
func (s *Scene) Close() {
	s.comp.Unmount()
	s.h.Frames().SetPanicHandler(nil)
}

func (s *Scene) Component() *robot.Component { return s.comp }

// onPanic stops the scene and replaces it with a panic screen.
func (s *Scene) onPanic(v any, stack []byte) {
	s.log.Error().Interface("panic", v).Bytes("stack", stack).Msg("frame panicked")
	if s.panicked != nil {
		return
	}
	s.panicked = fmt.Errorf("%w: %v", ErrPanicked, v)

	s.comp.Unmount()
	if s.ref.Current == nil {
		return
	}
	w, h := s.ref.Current.Size()
	fb := hal.NewFramebuffer(w, h)
	panicScreen(fb, v, stack)
	s.ref.Current.AppendChild(fb)
}
