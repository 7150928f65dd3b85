package camctl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// MouseButton is a set of mouse buttons.
type MouseButton uint8

// Mouse buttons.
const (
	ButtonLeft MouseButton = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Key is a set of keys the controller reacts to.
type Key uint8

// Keys.
const (
	KeyShift Key = 1 << iota
	KeyEscape
)

// ButtonState is the mouse button state of a frame.
type ButtonState struct {
	Pressed     MouseButton
	JustPressed MouseButton
}

// IsPressed reports whether b is held.
func (s ButtonState) IsPressed(b MouseButton) bool {
	return s.Pressed&b != 0
}

// IsJustPressed reports whether b went down this frame.
func (s ButtonState) IsJustPressed(b MouseButton) bool {
	return s.JustPressed&b != 0
}

// KeyState is the keyboard state of a frame.
type KeyState struct {
	Pressed     Key
	JustPressed Key
}

// IsPressed reports whether k is held.
func (s KeyState) IsPressed(k Key) bool {
	return s.Pressed&k != 0
}

// IsJustPressed reports whether k went down this frame.
func (s KeyState) IsJustPressed(k Key) bool {
	return s.JustPressed&k != 0
}

// RayPick is the result of casting the cursor ray into the scene.
// A missing hit is normal.
type RayPick struct {
	// Ray is the unobstructed view ray under the cursor.
	Ray gfx.Ray
	// Hit is the nearest scene intersection, valid when HasHit is set.
	Hit    mgl32.Vec3
	HasHit bool
}

// Frame is everything the controller reads in one frame.
type Frame struct {
	// CursorInViewport is false when the pointer is outside the viewport.
	CursorInViewport bool
	// Motion holds the raw pointer motion events of the frame in pixels.
	Motion []mgl32.Vec2
	// Wheel holds the raw vertical scroll events. Positive scrolls away from the user.
	Wheel   []float32
	Buttons ButtonState
	Keys    KeyState
	// Viewport is the viewport size in pixels.
	Viewport mgl32.Vec2
	// Pick is nil when the picking subsystem is not ready.
	Pick *RayPick
}
