// Package scene holds the cameras driven by the controller and applies its commands.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// Registry stores cameras by id.
type Registry struct {
	cameras map[uuid.UUID]gfx.Camera
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cameras: map[uuid.UUID]gfx.Camera{}}
}

// Add stores c under a new id.
func (r *Registry) Add(c gfx.Camera) uuid.UUID {
	id := uuid.New()
	r.cameras[id] = c
	return id
}

// Camera returns the camera stored under id.
func (r *Registry) Camera(id uuid.UUID) (gfx.Camera, bool) {
	c, ok := r.cameras[id]
	return c, ok
}

// Apply moves the camera id by cmd. The field of view and the orthographic
// scale are kept inside the bounds of s.
func (r *Registry) Apply(id uuid.UUID, cmd camctl.Command, s camctl.Settings) error {
	c, ok := r.cameras[id]
	if !ok {
		return camctl.CameraNotFound.New("apply: no camera %s", id)
	}

	c.Translation = c.Translation.Add(cmd.TranslationDelta)
	c.Rotation = c.Rotation.Mul(cmd.RotationDelta).Normalize()

	if c.Projection.Orthographic {
		c.Projection.Scale = math32.Max(c.Projection.Scale+cmd.ScaleDelta, s.MinScale)
	} else {
		c.Projection.FOV = mgl32.Clamp(
			c.Projection.FOV+cmd.FOVDelta,
			mgl32.DegToRad(s.MinFOVDegrees),
			mgl32.DegToRad(s.MaxFOVDegrees),
		)
	}

	r.cameras[id] = c
	return nil
}
