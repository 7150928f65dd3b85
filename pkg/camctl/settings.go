package camctl

// Settings tunes the controller. The zero value is not usable; start from DefaultSettings.
type Settings struct {
	TranslationZoomSensitivity float32 `yaml:"translation_zoom_sensitivity" envconfig:"TRANSLATION_ZOOM_SENSITIVITY"`
	FOVZoomSensitivity         float32 `yaml:"fov_zoom_sensitivity" envconfig:"FOV_ZOOM_SENSITIVITY"`
	OrbitSensitivity           float32 `yaml:"orbit_sensitivity" envconfig:"ORBIT_SENSITIVITY"`
	// ScaleZoomFactor is the fraction of the current orthographic scale one scroll unit changes.
	ScaleZoomFactor float32 `yaml:"scale_zoom_factor" envconfig:"SCALE_ZOOM_FACTOR"`
	// MaxPitchDegrees bounds the angle between the camera up axis and world up.
	MaxPitchDegrees float32 `yaml:"max_pitch_degrees" envconfig:"MAX_PITCH_DEGREES"`
	// MaxSelectionDistance bounds ground plane picks along the cursor ray.
	MaxSelectionDistance float32 `yaml:"max_selection_distance" envconfig:"MAX_SELECTION_DISTANCE"`

	MinFOVDegrees float32 `yaml:"min_fov_degrees" envconfig:"MIN_FOV_DEGREES"`
	MaxFOVDegrees float32 `yaml:"max_fov_degrees" envconfig:"MAX_FOV_DEGREES"`
	MinScale      float32 `yaml:"min_scale" envconfig:"MIN_SCALE"`

	NormalizeWheel bool    `yaml:"normalize_wheel" envconfig:"NORMALIZE_WHEEL"`
	WheelStep      float32 `yaml:"wheel_step" envconfig:"WHEEL_STEP"`
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{
		TranslationZoomSensitivity: 0.5,
		FOVZoomSensitivity:         0.1,
		OrbitSensitivity:           1.0,
		ScaleZoomFactor:            0.1,
		MaxPitchDegrees:            85,
		MaxSelectionDistance:       30,
		MinFOVDegrees:              5,
		MaxFOVDegrees:              120,
		MinScale:                   0.01,
		WheelStep:                  0.4,
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	switch {
	case s.MaxPitchDegrees <= 0 || s.MaxPitchDegrees > 180:
		return InvalidSettings.New("max_pitch_degrees must be in (0, 180], got %v", s.MaxPitchDegrees)
	case s.MaxSelectionDistance <= 0:
		return InvalidSettings.New("max_selection_distance must be positive, got %v", s.MaxSelectionDistance)
	case s.MinFOVDegrees <= 0 || s.MinFOVDegrees >= s.MaxFOVDegrees || s.MaxFOVDegrees >= 180:
		return InvalidSettings.New("fov bounds must satisfy 0 < min < max < 180, got [%v, %v]", s.MinFOVDegrees, s.MaxFOVDegrees)
	case s.MinScale <= 0:
		return InvalidSettings.New("min_scale must be positive, got %v", s.MinScale)
	case s.ScaleZoomFactor < 0 || s.ScaleZoomFactor >= 1:
		return InvalidSettings.New("scale_zoom_factor must be in [0, 1), got %v", s.ScaleZoomFactor)
	case s.NormalizeWheel && s.WheelStep <= 0:
		return InvalidSettings.New("wheel_step must be positive when normalize_wheel is set, got %v", s.WheelStep)
	}
	return nil
}

func (s Settings) sampler() Sampler {
	return Sampler{NormalizeWheel: s.NormalizeWheel, WheelStep: s.WheelStep}
}
