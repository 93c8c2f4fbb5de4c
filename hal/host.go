package hal

import "github.com/rs/zerolog"

const (
	defaultWidth  = 960
	defaultHeight = 640
)

// HostConfig sizes the host display and supplies its logger.
type HostConfig struct {
	Width  int
	Height int
	Logger *zerolog.Logger
}

// Host is the desktop HAL: an in-memory display container, buffered input and
// a frame queue. A runner (window or headless) drives it.
type Host struct {
	log     zerolog.Logger
	display *Container
	input   *InputQueue
	frames  *FrameQueue
}

var _ HAL = (*Host)(nil)

// New returns a host HAL implementation.
func New(cfg HostConfig) *Host {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Host{
		log:     log,
		display: NewContainer(cfg.Width, cfg.Height),
		input:   NewInputQueue(),
		frames:  NewFrameQueue(),
	}
}

func (h *Host) Logger() *zerolog.Logger { return &h.log }
func (h *Host) Display() Display        { return h.display }
func (h *Host) Input() Input            { return h.input }
func (h *Host) Frames() *FrameQueue     { return h.frames }

// Container exposes the concrete display for compositing.
func (h *Host) Container() *Container { return h.display }

// InputQueue exposes the input sink runners feed.
func (h *Host) InputQueue() *InputQueue { return h.input }
