package gfx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the float32 machine epsilon.
const Epsilon float32 = 1.1920929e-07

// Ray is a half line in world space.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the ray parameter where the ray crosses the plane
// through point with the given normal. It reports false when the ray is parallel
// to the plane. The parameter may be negative.
func (r Ray) IntersectPlane(point, normal mgl32.Vec3) (float32, bool) {
	denom := normal.Dot(r.Direction)
	if math32.Abs(denom) <= Epsilon {
		return 0, false
	}
	return point.Sub(r.Origin).Dot(normal) / denom, true
}

// Normalize returns v scaled to unit length. It reports false for vectors
// too short to have a direction.
func Normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l <= Epsilon || !IsFinite(v) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// TiltFromUp returns the angle in degrees between the local up axis of
// rotation q and WorldUp.
func TiltFromUp(q mgl32.Quat) float32 {
	cos := mgl32.Clamp(q.Rotate(mgl32.Vec3{0, 1, 0}).Dot(WorldUp), -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// RelativeRotation returns the rotation d such that from * d == to.
func RelativeRotation(from, to mgl32.Quat) mgl32.Quat {
	start := from.Normalize().Mat4().Mat3()
	target := to.Normalize().Mat4().Mat3()
	// The inverse of an orthonormal matrix is its transpose.
	return mgl32.Mat4ToQuat(start.Transpose().Mul3(target).Mat4()).Normalize()
}
