package trace

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/viewcam/internal/scene"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

const (
	defaultGround     = 50
	defaultFOVDegrees = 60
	defaultScale      = 10
)

// Step is the outcome of one replayed frame.
type Step struct {
	Index   int
	Mode    camctl.ProjectionMode
	Command camctl.Command
	// Camera is the active camera after the command was applied.
	Camera gfx.Camera
	// Pivot is the orbit pivot after the frame, if one is selected.
	Pivot    mgl32.Vec3
	HasPivot bool
}

// Replay runs every frame of t through a new controller and applies the
// commands to the trace cameras.
func Replay(t *Trace, s camctl.Settings, logger *log.Logger) ([]Step, error) {
	// Validated on load.
	mode, _ := parseMode(t.Mode)
	viewport, _ := vec2("viewport", t.Viewport)

	registry := scene.NewRegistry()
	state := camctl.NewControlState(
		registry.Add(perspectiveCamera(t.Cameras.Perspective)),
		registry.Add(orthographicCamera(t.Cameras.Orthographic)),
	)
	state.SetMode(mode)

	picker := scene.GroundPicker{HalfExtent: t.Ground}
	if picker.HalfExtent <= 0 {
		picker.HalfExtent = defaultGround
	}

	options := []camctl.Option{camctl.WithSettings(s)}
	if logger != nil {
		options = append(options, camctl.WithLogger(logger))
	}
	ctrl := camctl.NewController(state, options...)

	steps := make([]Step, 0, len(t.Frames))
	for i, f := range t.Frames {
		if f.Mode != "" {
			m, _ := parseMode(f.Mode)
			ctrl.SetMode(m)
		}

		id := state.ActiveCamera()
		cam, _ := registry.Camera(id)

		frame := f.frame(viewport)
		if frame.CursorInViewport && !f.NoPick {
			cursor, _ := vec2("cursor", f.Cursor)
			frame.Pick = picker.Pick(cam, cursor, viewport)
			if f.Hit != nil && frame.Pick != nil {
				frame.Pick.Hit, _ = vec3("hit", f.Hit)
				frame.Pick.HasHit = true
			}
		}

		cmd, err := ctrl.Update(frame, registry)
		if err != nil {
			return steps, errorx.Decorate(err, "trace: frame %d", i)
		}
		if err := registry.Apply(id, cmd, s); err != nil {
			return steps, errorx.Decorate(err, "trace: frame %d", i)
		}

		cam, _ = registry.Camera(id)
		pivot, hasPivot := state.OrbitPivot()
		steps = append(steps, Step{
			Index:    i,
			Mode:     state.Mode(),
			Command:  cmd,
			Camera:   cam,
			Pivot:    pivot,
			HasPivot: hasPivot,
		})
	}

	return steps, nil
}

func (f Frame) frame(viewport mgl32.Vec2) camctl.Frame {
	held, heldKeys, _ := parseInputs(f.Held)
	pressed, pressedKeys, _ := parseInputs(f.Pressed)

	frame := camctl.Frame{
		CursorInViewport: f.Cursor != nil,
		Wheel:            f.Scroll,
		Buttons:          camctl.ButtonState{Pressed: held | pressed, JustPressed: pressed},
		Keys:             camctl.KeyState{Pressed: heldKeys | pressedKeys, JustPressed: pressedKeys},
		Viewport:         viewport,
	}
	for _, m := range f.Motion {
		frame.Motion = append(frame.Motion, mgl32.Vec2{m[0], m[1]})
	}
	return frame
}

func perspectiveCamera(c CameraSpec) gfx.Camera {
	fov := c.FOVDegrees
	if fov <= 0 {
		fov = defaultFOVDegrees
	}
	return gfx.NewPerspectiveCamera(toVec3(c.Position), toVec3(c.LookAt), mgl32.DegToRad(fov))
}

func orthographicCamera(c CameraSpec) gfx.Camera {
	scale := c.Scale
	if scale <= 0 {
		scale = defaultScale
	}
	return gfx.NewOrthographicCamera(toVec3(c.Position), toVec3(c.LookAt), scale)
}

func toVec3(v []float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
