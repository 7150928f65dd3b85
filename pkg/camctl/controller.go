package camctl

import (
	"log"

	"github.com/google/uuid"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

// CameraLookup reads cameras from the scene.
type CameraLookup interface {
	Camera(id uuid.UUID) (gfx.Camera, bool)
}

// Controller runs the per-frame pipeline: sample input, classify the gesture,
// resolve the anchor and solve camera motion for the active projection mode.
//
// A Controller is not safe for concurrent use. Call Update once per frame.
type Controller struct {
	state    *ControlState
	settings Settings
	logger   *log.Logger
	command  Command
}

// Option configures a Controller.
type Option func(*Controller)

// WithSettings sets the controller settings.
func WithSettings(s Settings) Option {
	return func(c *Controller) {
		c.settings = s
	}
}

// WithLogger sets the logger degraded frames are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates a controller driving the cameras of state.
func NewController(state *ControlState, options ...Option) *Controller {
	c := &Controller{
		state:    state,
		settings: DefaultSettings(),
		logger:   log.Default(),
		command:  DefaultCommand(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// State returns the control state.
func (c *Controller) State() *ControlState {
	return c.state
}

// Settings returns the current settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings replaces the settings from the next frame on.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
}

// SetMode switches the active projection mode. A gesture in progress ends,
// so the next frame resolves its anchor through the new camera.
func (c *Controller) SetMode(mode ProjectionMode) {
	if mode == c.state.Mode() {
		return
	}
	c.state.SetMode(mode)
	c.reset()
}

// Command returns the command of the last frame.
func (c *Controller) Command() Command {
	return c.command
}

// Update processes one frame and returns its command.
//
// Selecting or clearing the orbit pivot mutates the control state. When the
// frame has no pick the previous command is returned unchanged. A missing
// camera resets the command and returns a CameraNotFound error.
func (c *Controller) Update(frame Frame, cameras CameraLookup) (Command, error) {
	if !frame.CursorInViewport {
		return c.reset(), nil
	}

	sampler := c.settings.sampler()
	motion := sampler.Motion(frame.Motion)
	scroll := sampler.Scroll(frame.Wheel)

	mode := c.state.Mode()
	commandType := Classify(frame.Keys, frame.Buttons, motion, scroll, c.command.Type, mode)
	if commandType == Inactive {
		return c.reset(), nil
	}

	id := c.state.ActiveCamera()
	camera, ok := cameras.Camera(id)
	if !ok {
		return c.reset(), CameraNotFound.New("no %v camera %s", mode, id)
	}

	if frame.Pick == nil {
		return c.command, nil
	}

	freshAnchor := ResolveAnchor(*frame.Pick, c.settings.MaxSelectionDistance)
	anchor := freshAnchor
	if c.command.HasAnchor {
		anchor = c.command.CursorAnchor
	}

	switch commandType {
	case SelectOrbitPivot:
		c.state.selectPivot(freshAnchor)
		c.command = DefaultCommand()
		c.command.Type = SelectOrbitPivot
		return c.command, nil
	case DeselectOrbitPivot:
		c.state.clearPivot()
		c.command = DefaultCommand()
		c.command.Type = DeselectOrbitPivot
		return c.command, nil
	}

	viewDir, ok := gfx.Normalize(frame.Pick.Ray.Direction)
	if !ok {
		viewDir = camera.Forward()
	}
	pivot, hasPivot := c.state.OrbitPivot()

	in := MotionInput{
		Camera:        camera,
		Type:          commandType,
		ViewDirection: viewDir,
		Anchor:        anchor,
		FreshAnchor:   freshAnchor,
		Motion:        motion,
		Scroll:        scroll,
		Pivot:         pivot,
		HasPivot:      hasPivot,
		Viewport:      frame.Viewport,
	}

	var (
		cmd Command
		err error
	)
	switch mode {
	case Orthographic:
		cmd, err = SolveOrthographic(in, c.settings)
	default:
		cmd, err = SolvePerspective(in, c.settings)
	}
	if err != nil {
		c.logger.Printf("camctl: %v: %v", commandType, err)
	}

	c.command = cmd
	return c.command, nil
}

func (c *Controller) reset() Command {
	c.command = DefaultCommand()
	return c.command
}
