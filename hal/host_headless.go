package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless drives the app and its frame queue from a ticker instead of a
// display. It returns after cfg.Ticks frames (0 runs until ctx is done) and
// always closes the app.
func RunHeadless(ctx context.Context, h HAL, newApp func(HAL) (App, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	app, err := newApp(h)
	if err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	defer app.Close()

	frames := h.Frames()
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Update(); err != nil {
				return err
			}
			frames.RunFrame()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
