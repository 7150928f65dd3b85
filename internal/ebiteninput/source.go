// Package ebiteninput samples ebiten input into controller frames.
package ebiteninput

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mgnsk/viewcam/pkg/camctl"
)

var buttons = map[ebiten.MouseButton]camctl.MouseButton{
	ebiten.MouseButtonLeft:   camctl.ButtonLeft,
	ebiten.MouseButtonMiddle: camctl.ButtonMiddle,
	ebiten.MouseButtonRight:  camctl.ButtonRight,
}

var keys = map[ebiten.Key]camctl.Key{
	ebiten.KeyShift:  camctl.KeyShift,
	ebiten.KeyEscape: camctl.KeyEscape,
}

// Source turns ebiten input into frames. Pointer motion is the cursor
// displacement since the previous call.
type Source struct {
	last    mgl32.Vec2
	hasLast bool
}

// Frame samples the input of the current tick. It also returns the cursor
// position for picking. The pick itself is left to the caller.
func (s *Source) Frame(width, height int) (camctl.Frame, mgl32.Vec2) {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()

	snap := snapshot{
		cursor: mgl32.Vec2{float32(x), float32(y)},
		wheel:  float32(wheel),
	}
	for eb, b := range buttons {
		if ebiten.IsMouseButtonPressed(eb) {
			snap.buttons.Pressed |= b
		}
		if inpututil.IsMouseButtonJustPressed(eb) {
			snap.buttons.JustPressed |= b
		}
	}
	for eb, k := range keys {
		if ebiten.IsKeyPressed(eb) {
			snap.keys.Pressed |= k
		}
		if inpututil.IsKeyJustPressed(eb) {
			snap.keys.JustPressed |= k
		}
	}

	return s.frame(snap, mgl32.Vec2{float32(width), float32(height)}), snap.cursor
}

type snapshot struct {
	cursor  mgl32.Vec2
	wheel   float32
	buttons camctl.ButtonState
	keys    camctl.KeyState
}

func (s *Source) frame(snap snapshot, viewport mgl32.Vec2) camctl.Frame {
	frame := camctl.Frame{
		CursorInViewport: snap.cursor.X() >= 0 && snap.cursor.Y() >= 0 &&
			snap.cursor.X() < viewport.X() && snap.cursor.Y() < viewport.Y(),
		Buttons:  snap.buttons,
		Keys:     snap.keys,
		Viewport: viewport,
	}

	if s.hasLast {
		if d := snap.cursor.Sub(s.last); d != (mgl32.Vec2{}) {
			frame.Motion = []mgl32.Vec2{d}
		}
	}
	s.last = snap.cursor
	s.hasLast = true

	if snap.wheel != 0 {
		frame.Wheel = []float32{snap.wheel}
	}

	return frame
}
