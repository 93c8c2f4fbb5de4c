package hostwin

import "robotscene/internal/buildinfo"

// Options configures the desktop window.
type Options struct {
	Title string
	Scale int
	TPS   int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "robotscene"
	}
	o.Title += " (" + buildinfo.Short() + ")"
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	return o
}
