package camctl

import (
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// SolveOrthographic computes the command for an orthographic camera.
//
// Scrolling scales the view proportionally to the current scale in every
// gesture. Errors are reported the same way as in SolvePerspective.
func SolveOrthographic(in MotionInput, s Settings) (Command, error) {
	cmd := DefaultCommand()
	cmd.Type = in.Type
	cmd.ScaleDelta = -in.Scroll * in.Camera.Projection.Scale * s.ScaleZoomFactor
	tr := in.Camera.Transform

	var err error

	switch in.Type {
	case Pan:
		// Orthographic rays are parallel and do not start at the camera, so the
		// direction is rebuilt from the camera to the point picked this frame.
		if dir, ok := gfx.Normalize(in.FreshAnchor.Sub(tr.Translation)); ok {
			cmd.TranslationDelta, err = panTranslation(tr, dir, in.Anchor)
		}
		cmd.hold(in.Anchor)

	case Orbit:
		yaw, pitch := OrbitAngles(in.Motion, in.Viewport, s.OrbitSensitivity)
		target := orbitRotation(tr.Rotation, yaw, pitch, s.MaxPitchDegrees)
		cmd.RotationDelta = gfx.RelativeRotation(tr.Rotation, target)
		cmd.hold(in.Anchor)

	case Inactive, ScaleZoom, TranslationZoom, FOVZoom, SelectOrbitPivot, DeselectOrbitPivot:

	default:
		unhandled("orthographic", in.Type)
	}

	return cmd, err
}
