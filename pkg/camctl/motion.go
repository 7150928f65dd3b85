package camctl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// MotionInput is the per-frame input of a motion solver.
type MotionInput struct {
	Camera gfx.Camera
	Type   CommandType
	// ViewDirection is the normalized direction of the cursor ray.
	ViewDirection mgl32.Vec3
	// Anchor is the point held under the cursor since the gesture started.
	Anchor mgl32.Vec3
	// FreshAnchor is the point resolved under the cursor in this frame.
	FreshAnchor mgl32.Vec3
	Motion      mgl32.Vec2
	Scroll      float32
	Pivot       mgl32.Vec3
	HasPivot    bool
	Viewport    mgl32.Vec2
}

// OrbitAngles maps pointer motion to yaw and pitch in radians. Moving the
// pointer across the whole viewport turns by pi times the sensitivity.
func OrbitAngles(motion, viewport mgl32.Vec2, sensitivity float32) (yaw, pitch float32) {
	if viewport.X() > 0 {
		yaw = motion.X() / viewport.X() * math32.Pi * sensitivity
	}
	if viewport.Y() > 0 {
		pitch = motion.Y() / viewport.Y() * math32.Pi * sensitivity
	}
	return yaw, pitch
}

// orbitRotation turns current by yaw around world up and by pitch around the
// local right axis. The pitch is dropped when the result would tilt the camera up
// axis more than maxPitch degrees away from world up. Yaw is never limited.
func orbitRotation(current mgl32.Quat, yaw, pitch, maxPitch float32) mgl32.Quat {
	yawRot := mgl32.QuatRotate(yaw, gfx.WorldUp)
	pitchRot := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})

	yawed := yawRot.Mul(current)
	target := yawed.Mul(pitchRot).Normalize()
	if gfx.TiltFromUp(target) > maxPitch {
		return yawed.Normalize()
	}
	return target
}

// orbitPosition returns the camera position that keeps pivot at the same local
// offset after rotating to target, moved by dolly along the pivot direction.
func orbitPosition(current gfx.Transform, target mgl32.Quat, pivot mgl32.Vec3, dolly float32) mgl32.Vec3 {
	local := current.Local(pivot)
	next := gfx.Transform{Rotation: target}
	offset := next.Right().Mul(local.X()).
		Add(next.Up().Mul(local.Y())).
		Add(next.Back().Mul(local.Z()))

	var zoom mgl32.Vec3
	if dir, ok := gfx.Normalize(offset); ok {
		zoom = dir.Mul(dolly)
	}
	return pivot.Sub(offset).Sub(zoom)
}

// panTranslation returns the translation in the camera image plane after which
// anchor lies on the line through the camera along viewDir.
//
// It solves right*x + up*y - viewDir*x3 = anchor - position.
func panTranslation(tr gfx.Transform, viewDir, anchor mgl32.Vec3) (mgl32.Vec3, error) {
	right := tr.Right()
	up := tr.Up()

	a := mgl32.Mat3FromCols(right, up, viewDir.Mul(-1))
	x, err := gfx.Solve3(a, anchor.Sub(tr.Translation))
	if err != nil {
		return mgl32.Vec3{}, errorx.Decorate(err, "pan dropped for this frame")
	}
	return right.Mul(x[0]).Add(up.Mul(x[1])), nil
}

func unhandled(solver string, t CommandType) {
	errorx.Panic(errorx.InternalError.New("%s solver: unhandled command type %v", solver, t))
}
