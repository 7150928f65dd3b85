package camctl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// ControlState records which camera each projection mode drives, the active
// mode and the orbit pivot. It lives for the whole session and is not safe for
// concurrent use.
type ControlState struct {
	mode         ProjectionMode
	perspective  uuid.UUID
	orthographic uuid.UUID
	pivot        mgl32.Vec3
	hasPivot     bool
}

// NewControlState creates a state in perspective mode without a pivot.
func NewControlState(perspective, orthographic uuid.UUID) *ControlState {
	return &ControlState{
		mode:         Perspective,
		perspective:  perspective,
		orthographic: orthographic,
	}
}

// Mode returns the active projection mode.
func (s *ControlState) Mode() ProjectionMode {
	return s.mode
}

// SetMode switches the active projection mode.
func (s *ControlState) SetMode(mode ProjectionMode) {
	s.mode = mode
}

// Camera returns the camera driven in mode.
func (s *ControlState) Camera(mode ProjectionMode) uuid.UUID {
	if mode == Orthographic {
		return s.orthographic
	}
	return s.perspective
}

// ActiveCamera returns the camera of the active mode.
func (s *ControlState) ActiveCamera() uuid.UUID {
	return s.Camera(s.mode)
}

// OrbitPivot returns the orbit pivot, if one is selected.
func (s *ControlState) OrbitPivot() (mgl32.Vec3, bool) {
	return s.pivot, s.hasPivot
}

func (s *ControlState) selectPivot(p mgl32.Vec3) {
	s.pivot = p
	s.hasPivot = true
}

func (s *ControlState) clearPivot() {
	s.pivot = mgl32.Vec3{}
	s.hasPivot = false
}
