package camctl

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is the error namespace of the camctl package.
	Errors = errorx.NewNamespace("camctl")

	// InvalidSettings is returned by Settings.Validate.
	InvalidSettings = Errors.NewType("invalid_settings")

	// CameraNotFound is returned when the active camera is missing from the scene.
	CameraNotFound = Errors.NewType("camera_not_found", errorx.NotFound())
)
