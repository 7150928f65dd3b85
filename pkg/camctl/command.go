// Package camctl turns per-frame pointer, scroll and key input into camera motion.
package camctl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CommandType is the gesture recognized in a frame.
type CommandType int

// Command types.
const (
	Inactive CommandType = iota
	Pan
	Orbit
	ScaleZoom
	TranslationZoom
	FOVZoom
	SelectOrbitPivot
	DeselectOrbitPivot
)

// CommandTypes lists every command type.
var CommandTypes = []CommandType{
	Inactive,
	Pan,
	Orbit,
	ScaleZoom,
	TranslationZoom,
	FOVZoom,
	SelectOrbitPivot,
	DeselectOrbitPivot,
}

func (t CommandType) String() string {
	switch t {
	case Inactive:
		return "Inactive"
	case Pan:
		return "Pan"
	case Orbit:
		return "Orbit"
	case ScaleZoom:
		return "ScaleZoom"
	case TranslationZoom:
		return "TranslationZoom"
	case FOVZoom:
		return "FOVZoom"
	case SelectOrbitPivot:
		return "SelectOrbitPivot"
	case DeselectOrbitPivot:
		return "DeselectOrbitPivot"
	default:
		return fmt.Sprintf("CommandType(%d)", int(t))
	}
}

// ProjectionMode selects the active camera.
type ProjectionMode int

// Projection modes.
const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

// Command is the camera motion produced for one frame.
// It is replaced every frame, never accumulated.
type Command struct {
	// TranslationDelta is added to the camera position.
	TranslationDelta mgl32.Vec3
	// RotationDelta is composed onto the camera orientation as rotation * delta.
	RotationDelta mgl32.Quat
	// ScaleDelta is added to the orthographic scale.
	ScaleDelta float32
	// FOVDelta is added to the perspective field of view.
	FOVDelta float32
	// CursorAnchor is the world point held under the pointer while HasAnchor is set.
	// The next frame of the same gesture reuses it instead of picking again.
	CursorAnchor mgl32.Vec3
	HasAnchor    bool
	Type         CommandType
}

// DefaultCommand returns an inactive command that moves nothing.
func DefaultCommand() Command {
	return Command{
		RotationDelta: mgl32.QuatIdent(),
		Type:          Inactive,
	}
}

func (c *Command) hold(anchor mgl32.Vec3) {
	c.CursorAnchor = anchor
	c.HasAnchor = true
}
