package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis. The ground plane is z = 0.
var WorldUp = mgl32.Vec3{0, 0, 1}

// Transform is a camera pose in world space.
//
// The camera looks along its local -Z axis with local +Y up and local +X right.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// Right returns the local X axis in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the local Y axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Back returns the local Z axis in world space.
func (t Transform) Back() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Forward returns the viewing direction.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Back().Mul(-1)
}

// Local expresses a world-space point as components along the local axes,
// relative to the transform's translation.
func (t Transform) Local(p mgl32.Vec3) mgl32.Vec3 {
	d := p.Sub(t.Translation)
	return mgl32.Vec3{d.Dot(t.Right()), d.Dot(t.Up()), d.Dot(t.Back())}
}

// LookAt returns a transform placed at eye and facing target.
func LookAt(eye, target, up mgl32.Vec3) Transform {
	forward, ok := Normalize(target.Sub(eye))
	if !ok {
		return Transform{Translation: eye, Rotation: mgl32.QuatIdent()}
	}

	right, ok := Normalize(forward.Cross(up))
	if !ok {
		// Looking straight along up: any perpendicular right axis will do.
		right, _ = Normalize(forward.Cross(mgl32.Vec3{0, 1, 0}))
	}
	trueUp := right.Cross(forward)

	m := mgl32.Mat3FromCols(right, trueUp, forward.Mul(-1))
	return Transform{
		Translation: eye,
		Rotation:    mgl32.Mat4ToQuat(m.Mat4()).Normalize(),
	}
}

// Projection holds the projection parameters of a camera.
type Projection struct {
	Orthographic bool
	// FOV is the vertical field of view in radians.
	FOV float32
	// Scale is the orthographic half height in world units.
	Scale float32
	Near  float32
	Far   float32
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float32) mgl32.Mat4 {
	if p.Orthographic {
		h := p.Scale
		w := h * aspect
		return mgl32.Ortho(-w, w, -h, h, p.Near, p.Far)
	}
	return mgl32.Perspective(p.FOV, aspect, p.Near, p.Far)
}

// Camera is a transform with a projection.
type Camera struct {
	Transform
	Projection Projection
}

// NewPerspectiveCamera creates a perspective camera at eye looking at target.
func NewPerspectiveCamera(eye, target mgl32.Vec3, fov float32) Camera {
	return Camera{
		Transform: LookAt(eye, target, WorldUp),
		Projection: Projection{
			FOV:  fov,
			Near: 0.1,
			Far:  1000,
		},
	}
}

// NewOrthographicCamera creates an orthographic camera at eye looking at target.
func NewOrthographicCamera(eye, target mgl32.Vec3, scale float32) Camera {
	return Camera{
		Transform: LookAt(eye, target, WorldUp),
		Projection: Projection{
			Orthographic: true,
			Scale:        scale,
			Near:         -1000,
			Far:          1000,
		},
	}
}

// View returns the view matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Translation, c.Translation.Add(c.Forward()), c.Up())
}

// ViewProjection returns the combined view-projection matrix for the viewport.
func (c Camera) ViewProjection(viewport mgl32.Vec2) mgl32.Mat4 {
	return c.Projection.Matrix(aspect(viewport)).Mul4(c.View())
}

// WorldToScreen projects p to pixel coordinates with the origin in the top left
// corner. It reports false when p is behind a perspective camera.
func (c Camera) WorldToScreen(p mgl32.Vec3, viewport mgl32.Vec2) (mgl32.Vec2, bool) {
	clip := c.ViewProjection(viewport).Mul4x1(p.Vec4(1))
	if clip.W() <= Epsilon {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * viewport.X(),
		(1 - ndc.Y()) / 2 * viewport.Y(),
	}, true
}

// ScreenRay returns the unobstructed view ray through the pixel at pos.
func (c Camera) ScreenRay(pos, viewport mgl32.Vec2) Ray {
	x := 2*pos.X()/viewport.X() - 1
	y := 1 - 2*pos.Y()/viewport.Y()

	inv := c.ViewProjection(viewport).Inv()
	near := unproject(inv, mgl32.Vec4{x, y, -1, 1})
	far := unproject(inv, mgl32.Vec4{x, y, 1, 1})

	if c.Projection.Orthographic {
		return Ray{Origin: near, Direction: c.Forward()}
	}

	dir, ok := Normalize(far.Sub(near))
	if !ok {
		dir = c.Forward()
	}
	return Ray{Origin: c.Translation, Direction: dir}
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	v := inv.Mul4x1(ndc)
	return v.Vec3().Mul(1 / v.W())
}

func aspect(viewport mgl32.Vec2) float32 {
	if viewport.X() <= 0 || viewport.Y() <= 0 {
		return 1
	}
	return viewport.X() / viewport.Y()
}
