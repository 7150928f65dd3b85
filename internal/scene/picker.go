package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// GroundPicker casts cursor rays against a square of ground centered at the origin.
type GroundPicker struct {
	HalfExtent float32
}

// Pick casts the ray through the cursor pixel. It returns nil for an empty viewport.
func (p GroundPicker) Pick(c gfx.Camera, cursor, viewport mgl32.Vec2) *camctl.RayPick {
	if viewport.X() <= 0 || viewport.Y() <= 0 {
		return nil
	}

	ray := c.ScreenRay(cursor, viewport)
	pick := &camctl.RayPick{Ray: ray}

	if t, ok := ray.IntersectPlane(mgl32.Vec3{}, gfx.WorldUp); ok && t > 0 {
		hit := ray.At(t)
		if math32.Abs(hit.X()) <= p.HalfExtent && math32.Abs(hit.Y()) <= p.HalfExtent {
			pick.Hit = hit
			pick.HasHit = true
		}
	}

	return pick
}
