package camctl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Classify returns the gesture of the current frame.
//
// The checks run in priority order and the first match wins. Selecting the
// orbit pivot requires the previous frame to be inactive so a held button does
// not select again every frame, and a click that already started a pan or
// orbit does not select.
func Classify(keys KeyState, buttons ButtonState, motion mgl32.Vec2, scroll float32, prev CommandType, mode ProjectionMode) CommandType {
	moving := motion.Len() > 0
	scrolling := scroll != 0
	shifting := keys.IsPressed(KeyShift)

	if moving && !shifting && buttons.IsPressed(ButtonRight) {
		return Pan
	}

	if (moving && buttons.IsPressed(ButtonMiddle)) || (shifting && buttons.IsPressed(ButtonRight)) {
		return Orbit
	}

	if mode == Orthographic && scrolling {
		return ScaleZoom
	}

	if mode == Perspective && scrolling {
		if shifting {
			return FOVZoom
		}
		return TranslationZoom
	}

	if mode == Perspective {
		if buttons.IsJustPressed(ButtonRight) && prev == Inactive {
			return SelectOrbitPivot
		}
		if keys.IsJustPressed(KeyEscape) {
			return DeselectOrbitPivot
		}
	}

	return Inactive
}
