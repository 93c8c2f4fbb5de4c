package hal

import "github.com/rs/zerolog"

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook. It is the output
// surface a renderer draws into and a display container shows.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	// Snapshot copies the last presented frame into dst.
	Snapshot(dst []byte) int
}

// Display is a container that shows the framebuffers attached to it.
//
// Children are composited in insertion order. Appending a framebuffer that is
// already a child moves it to the end.
type Display interface {
	Size() (w, h int)
	AppendChild(fb Framebuffer)
	RemoveChild(fb Framebuffer) bool
	Children() []Framebuffer
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent reports pointer motion while the primary button is held
// (DX, DY in pixels) and wheel movement (positive is away from the user).
type PointerEvent struct {
	DX, DY float64
	Wheel  float64
}

// Pointer provides pointer events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// App is what a runner drives: Update once per frame before the scheduled
// frame callbacks, Close once when the runner exits.
type App interface {
	Update() error
	Close()
}

// HAL provides the only contact point between the program and the host.
type HAL interface {
	Logger() *zerolog.Logger
	Display() Display
	Input() Input
	Frames() *FrameQueue
}
