package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex builds an opaque color from a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Hex returns the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies the RGB channels by s, saturating at 255.
func (c Color) Scale(s float32) Color {
	if s < 0 {
		s = 0
	}
	mul := func(ch uint8) uint8 {
		v := float32(ch) * s
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Add sums two colors channel-wise, saturating at 255.
func (c Color) Add(o Color) Color {
	add := func(a, b uint8) uint8 {
		v := uint16(a) + uint16(b)
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return Color{R: add(c.R, o.R), G: add(c.G, o.G), B: add(c.B, o.B), A: c.A}
}

// Modulate multiplies two colors channel-wise (tinting).
func (c Color) Modulate(o Color) Color {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 255) }
	return Color{R: mul(c.R, o.R), G: mul(c.G, o.G), B: mul(c.B, o.B), A: c.A}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }
