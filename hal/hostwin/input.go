//go:build cgo

package hostwin

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"robotscene/hal"
)

type pointerState struct {
	dragging bool
	lastX    int
	lastY    int
}

func (p *pointerState) poll(q *hal.InputQueue) {
	var ev hal.PointerEvent

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if p.dragging {
			ev.DX = float64(x - p.lastX)
			ev.DY = float64(y - p.lastY)
		}
		p.dragging = true
	} else {
		p.dragging = false
	}
	p.lastX, p.lastY = x, y

	_, ev.Wheel = ebiten.Wheel()
	q.EmitPointer(ev)
}

var navKeys = []struct {
	key  ebiten.Key
	code hal.KeyCode
}{
	{ebiten.KeyArrowUp, hal.KeyUp},
	{ebiten.KeyArrowDown, hal.KeyDown},
	{ebiten.KeyArrowLeft, hal.KeyLeft},
	{ebiten.KeyArrowRight, hal.KeyRight},
	{ebiten.KeyEnter, hal.KeyEnter},
	{ebiten.KeyPageUp, hal.KeyPageUp},
	{ebiten.KeyPageDown, hal.KeyPageDown},
}

func pollKeys(q *hal.InputQueue) {
	for _, r := range ebiten.AppendInputChars(nil) {
		q.EmitKey(hal.KeyEvent{Press: true, Rune: r})
	}
	for _, k := range navKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			q.EmitKey(hal.KeyEvent{Code: k.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(k.key) {
			q.EmitKey(hal.KeyEvent{Code: k.code, Press: false})
		}
	}
}
