package app

import (
	"image/color"

	"tinygo.org/x/drivers"

	"robotscene/hal"
)

// surface draws into an RGB565 framebuffer through the tinygo display
// contract so tinyfont can render on it.
type surface struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = surface{}

func (d surface) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d surface) SetPixel(x, y int16, c color.RGBA) {
	off, ok := d.offset(int(x), int(y))
	if !ok {
		return
	}
	buf := d.fb.Buffer()
	pixel := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// Display is a no-op; the owner of the framebuffer presents it.
func (d surface) Display() error { return nil }

// FillRectangle blends c over the area using its alpha.
func (d surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || width <= 0 || height <= 0 {
		return nil
	}
	buf := d.fb.Buffer()
	for yy := int(y); yy < int(y)+int(height); yy++ {
		for xx := int(x); xx < int(x)+int(width); xx++ {
			off, ok := d.offset(xx, yy)
			if !ok {
				continue
			}
			pixel := blend565(uint16(buf[off])|uint16(buf[off+1])<<8, c)
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
	return nil
}

func (d surface) offset(x, y int) (int, bool) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return 0, false
	}
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return 0, false
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(d.fb.Buffer()) {
		return 0, false
	}
	return off, true
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func blend565(dst uint16, c color.RGBA) uint16 {
	a := uint32(c.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	r := uint8(dst>>11) << 3
	g := uint8(dst>>5) << 2
	b := uint8(dst) << 3
	return rgb565From888(mix(r, c.R), mix(g, c.G), mix(b, c.B))
}
