// Package trace loads recorded input traces and replays them through the camera controller.
package trace

import (
	"errors"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"gopkg.in/yaml.v3"
)

var (
	// Errors is the trace error namespace.
	Errors = errorx.NewNamespace("trace")
	// InvalidTrace is returned for traces that decode but cannot be replayed.
	InvalidTrace = Errors.NewType("invalid_trace")
)

// Trace is a recorded session.
type Trace struct {
	// Mode is the initial projection mode, "perspective" or "orthographic".
	Mode string `yaml:"mode"`
	// Viewport is the viewport size in pixels.
	Viewport []float32 `yaml:"viewport"`
	// Ground is the half extent of the pickable ground square.
	Ground  float32 `yaml:"ground"`
	Cameras Cameras `yaml:"cameras"`
	Frames  []Frame `yaml:"frames"`
}

// Cameras holds the initial camera of each projection mode.
type Cameras struct {
	Perspective  CameraSpec `yaml:"perspective"`
	Orthographic CameraSpec `yaml:"orthographic"`
}

// CameraSpec places a camera.
type CameraSpec struct {
	Position   []float32 `yaml:"position"`
	LookAt     []float32 `yaml:"look_at"`
	FOVDegrees float32   `yaml:"fov_degrees"`
	Scale      float32   `yaml:"scale"`
}

// Frame is the input of one frame.
type Frame struct {
	// Cursor is the pointer position in pixels. A frame without a cursor is
	// outside the viewport.
	Cursor []float32   `yaml:"cursor"`
	Motion [][]float32 `yaml:"motion"`
	Scroll []float32   `yaml:"scroll"`
	// Held and Pressed name the buttons and keys held down and pressed in
	// this frame: left, middle, right, shift and escape.
	Held    []string `yaml:"held"`
	Pressed []string `yaml:"pressed"`
	// NoPick simulates a frame where picking is not ready.
	NoPick bool `yaml:"no_pick"`
	// Hit overrides the scene hit under the cursor.
	Hit []float32 `yaml:"hit"`
	// Mode switches the projection mode before the frame is processed.
	Mode string `yaml:"mode"`
}

// Load decodes and validates a trace.
func Load(r io.Reader) (*Trace, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	t := &Trace{}
	if err := dec.Decode(t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, InvalidTrace.New("empty trace")
		}
		return nil, errorx.Decorate(err, "trace: decoding")
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Trace) validate() error {
	if _, err := parseMode(t.Mode); err != nil {
		return err
	}

	viewport, err := vec2("viewport", t.Viewport)
	if err != nil {
		return err
	}
	if viewport.X() <= 0 || viewport.Y() <= 0 {
		return InvalidTrace.New("viewport must be positive, got %v", viewport)
	}

	for name, c := range map[string]CameraSpec{
		"perspective":  t.Cameras.Perspective,
		"orthographic": t.Cameras.Orthographic,
	} {
		if _, err := vec3(name+".position", c.Position); err != nil {
			return err
		}
		if _, err := vec3(name+".look_at", c.LookAt); err != nil {
			return err
		}
	}

	for i, f := range t.Frames {
		if err := f.validate(); err != nil {
			return errorx.Decorate(err, "frame %d", i)
		}
	}

	return nil
}

func (f Frame) validate() error {
	if f.Cursor != nil {
		if _, err := vec2("cursor", f.Cursor); err != nil {
			return err
		}
	}
	for _, m := range f.Motion {
		if _, err := vec2("motion", m); err != nil {
			return err
		}
	}
	if f.Hit != nil {
		if _, err := vec3("hit", f.Hit); err != nil {
			return err
		}
	}
	if _, err := parseMode(f.Mode); err != nil {
		return err
	}
	if _, _, err := parseInputs(f.Held); err != nil {
		return err
	}
	if _, _, err := parseInputs(f.Pressed); err != nil {
		return err
	}
	return nil
}

func parseMode(s string) (camctl.ProjectionMode, error) {
	switch strings.ToLower(s) {
	case "", "perspective":
		return camctl.Perspective, nil
	case "orthographic":
		return camctl.Orthographic, nil
	default:
		return 0, InvalidTrace.New("unknown projection mode %q", s)
	}
}

func parseInputs(names []string) (camctl.MouseButton, camctl.Key, error) {
	var (
		buttons camctl.MouseButton
		keys    camctl.Key
	)
	for _, name := range names {
		switch strings.ToLower(name) {
		case "left":
			buttons |= camctl.ButtonLeft
		case "middle":
			buttons |= camctl.ButtonMiddle
		case "right":
			buttons |= camctl.ButtonRight
		case "shift":
			keys |= camctl.KeyShift
		case "escape":
			keys |= camctl.KeyEscape
		default:
			return 0, 0, InvalidTrace.New("unknown input %q", name)
		}
	}
	return buttons, keys, nil
}

func vec2(name string, v []float32) (mgl32.Vec2, error) {
	if len(v) != 2 {
		return mgl32.Vec2{}, InvalidTrace.New("%s: want 2 components, got %d", name, len(v))
	}
	return mgl32.Vec2{v[0], v[1]}, nil
}

func vec3(name string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, InvalidTrace.New("%s: want 3 components, got %d", name, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
