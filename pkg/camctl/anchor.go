package camctl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// ResolveAnchor returns the world point the cursor grabs.
//
// It prefers the scene hit, then the ground plane within maxSelectionDist, then
// a point on a sphere around the ray origin with radius equal to its height above
// the ground but at least 1. It always returns a point.
func ResolveAnchor(pick RayPick, maxSelectionDist float32) mgl32.Vec3 {
	if pick.HasHit {
		return pick.Hit
	}

	origin := pick.Ray.Origin
	dir, ok := gfx.Normalize(pick.Ray.Direction)
	if !ok {
		return origin
	}
	ray := gfx.Ray{Origin: origin, Direction: dir}

	if dist, ok := ray.IntersectPlane(mgl32.Vec3{}, gfx.WorldUp); ok {
		if dist > gfx.Epsilon && dist < maxSelectionDist {
			return ray.At(dist)
		}
	}

	radius := math32.Abs(origin.Dot(gfx.WorldUp))
	if radius < 1 {
		radius = 1
	}
	return ray.At(radius)
}
