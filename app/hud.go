package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"robotscene/hal"
	"robotscene/internal/buildinfo"
	"robotscene/robot"
)

const (
	hudX          = 2
	hudLineHeight = 7
	hudBaseline   = 5
)

var (
	hudFG = color.RGBA{R: 0xE8, G: 0xF5, B: 0xEE, A: 0xFF}
	hudBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x90}
)

// hud is the text overlay in the top-left corner of the scene surface.
type hud struct {
	font  tinyfont.Fonter
	lines []string
}

func newHUD() *hud {
	return &hud{font: &tinyfont.TomThumb}
}

func (h *hud) text(c *robot.Component) []string {
	h.lines = h.lines[:0]
	if c == nil {
		return h.lines
	}
	st := c.Renderer().Stats()
	h.lines = append(h.lines,
		"robotscene "+buildinfo.Short(),
		fmt.Sprintf("tick %d  %s", c.Loop().Ticks(), c.Renderer().Mode),
		fmt.Sprintf("tris %d/%d", st.Drawn, st.Triangles),
	)
	return h.lines
}

func (h *hud) draw(fb hal.Framebuffer, c *robot.Component) {
	lines := h.text(c)
	if len(lines) == 0 {
		return
	}
	d := surface{fb: fb}

	width := 0
	for _, l := range lines {
		w, _ := tinyfont.LineWidth(h.font, l)
		width = max(width, int(w))
	}
	_ = d.FillRectangle(0, 0, int16(width+2*hudX), int16(len(lines)*hudLineHeight+2), hudBG)

	for i, l := range lines {
		tinyfont.WriteLine(d, h.font, hudX, int16(hudBaseline+i*hudLineHeight), l, hudFG)
	}
}
