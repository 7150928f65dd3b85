package camctl

import (
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// SolvePerspective computes the command for a perspective camera.
//
// The returned command is always usable. A non-nil error reports that the pan
// system was singular and the lateral part of the translation was dropped.
func SolvePerspective(in MotionInput, s Settings) (Command, error) {
	cmd := DefaultCommand()
	cmd.Type = in.Type
	tr := in.Camera.Transform

	var err error

	switch in.Type {
	case FOVZoom:
		cmd.FOVDelta = -in.Scroll * s.FOVZoomSensitivity

	case TranslationZoom:
		cmd.TranslationDelta = in.ViewDirection.Mul(s.TranslationZoomSensitivity * in.Scroll)

	case Pan:
		// Keeps the anchor on the cursor ray while scrolling dollies forward.
		dolly := tr.Forward().Mul(s.TranslationZoomSensitivity * in.Scroll)
		lateral, panErr := panTranslation(tr, in.ViewDirection, in.Anchor)
		err = panErr
		cmd.TranslationDelta = dolly.Add(lateral)
		cmd.hold(in.Anchor)

	case Orbit:
		yaw, pitch := OrbitAngles(in.Motion, in.Viewport, s.OrbitSensitivity)
		target := orbitRotation(tr.Rotation, yaw, pitch, s.MaxPitchDegrees)

		position := tr.Translation
		if in.HasPivot {
			position = orbitPosition(tr, target, in.Pivot, s.TranslationZoomSensitivity*in.Scroll)
		}

		cmd.TranslationDelta = position.Sub(tr.Translation)
		cmd.RotationDelta = gfx.RelativeRotation(tr.Rotation, target)
		cmd.hold(in.Anchor)

	case Inactive, ScaleZoom, SelectOrbitPivot, DeselectOrbitPivot:

	default:
		unhandled("perspective", in.Type)
	}

	return cmd, err
}
