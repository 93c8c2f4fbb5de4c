package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"robotscene/app"
	"robotscene/config"
	"robotscene/hal"
	"robotscene/hal/hostwin"
	"robotscene/internal/buildinfo"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("robotscene", flag.ContinueOnError)
	flags := config.Register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}
	log, err := hal.NewLogger(os.Stderr, cfg.Log.Level, isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		return err
	}
	log.Info().
		EmbedObject(buildinfo.Info{}).
		Str("config", flags.Path).
		Bool("headless", flags.Headless).
		Msg("starting")

	h := hal.New(hal.HostConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Logger: &log,
	})
	newApp := func(h hal.HAL) (hal.App, error) {
		s, err := app.New(h, *cfg, app.Options{ExitOnPanic: flags.Headless})
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	if flags.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, h, newApp, hal.HeadlessConfig{
			Enabled: true,
			Hz:      cfg.Headless.Hz,
			Ticks:   cfg.Headless.Ticks,
		})
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("interrupted")
			return nil
		}
		return err
	}

	return hostwin.Run(h, newApp, hostwin.Options{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
	})
}
