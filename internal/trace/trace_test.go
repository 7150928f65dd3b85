package trace_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/joomcode/errorx"
	"github.com/mgnsk/viewcam/internal/trace"
	"github.com/mgnsk/viewcam/pkg/camctl"
	. "github.com/onsi/gomega"
)

const header = `
viewport: [800, 600]
cameras:
  perspective:
    position: [0, -10, 10]
    look_at: [0, 0, 0]
    fov_degrees: 60
  orthographic:
    position: [0, 0, 20]
    look_at: [0, 0, 0]
    scale: 10
`

func load(t *testing.T, frames string) *trace.Trace {
	t.Helper()
	tr, err := trace.Load(strings.NewReader(header + frames))
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func replay(t *testing.T, tr *trace.Trace) []trace.Step {
	t.Helper()
	steps, err := trace.Replay(tr, camctl.DefaultSettings(), log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	return steps
}

func TestReplayPanKeepsAnchorUnderCursor(t *testing.T) {
	g := NewGomegaWithT(t)

	steps := replay(t, load(t, `
frames:
  - cursor: [410, 300]
    motion: [[10, 0]]
    pressed: [right]
  - cursor: [430, 320]
    motion: [[20, 20]]
    held: [right]
  - cursor: [460, 320]
    motion: [[30, 0]]
    held: [right]
`))

	g.Expect(steps).To(HaveLen(3))
	anchor := steps[0].Command.CursorAnchor
	cursors := []mgl32.Vec2{{410, 300}, {430, 320}, {460, 320}}

	for i, step := range steps {
		g.Expect(step.Command.Type).To(Equal(camctl.Pan))
		g.Expect(step.Command.HasAnchor).To(BeTrue())
		g.Expect(step.Command.CursorAnchor).To(Equal(anchor))

		screen, ok := step.Camera.WorldToScreen(anchor, mgl32.Vec2{800, 600})
		g.Expect(ok).To(BeTrue())
		g.Expect(screen.X()).To(BeNumerically("~", cursors[i].X(), 0.05), "frame %d", i)
		g.Expect(screen.Y()).To(BeNumerically("~", cursors[i].Y(), 0.05), "frame %d", i)
	}
}

func TestReplayOrbitAroundPivot(t *testing.T) {
	g := NewGomegaWithT(t)

	steps := replay(t, load(t, `
frames:
  - cursor: [400, 300]
    pressed: [right]
  - cursor: [430, 310]
    motion: [[30, 10]]
    held: [middle]
  - cursor: [400, 330]
    motion: [[-30, 20]]
    held: [middle]
`))

	g.Expect(steps[0].Command.Type).To(Equal(camctl.SelectOrbitPivot))
	g.Expect(steps[0].HasPivot).To(BeTrue())
	pivot := steps[0].Pivot
	g.Expect(near(pivot, mgl32.Vec3{}, 1e-3)).To(BeTrue(), "pivot %v", pivot)

	for _, step := range steps[1:] {
		g.Expect(step.Command.Type).To(Equal(camctl.Orbit))
		g.Expect(step.Pivot).To(Equal(pivot))

		screen, ok := step.Camera.WorldToScreen(pivot, mgl32.Vec2{800, 600})
		g.Expect(ok).To(BeTrue())
		g.Expect(screen.X()).To(BeNumerically("~", 400, 0.05))
		g.Expect(screen.Y()).To(BeNumerically("~", 300, 0.05))
	}

	g.Expect(steps[2].Camera.Translation).NotTo(Equal(steps[0].Camera.Translation))
}

func TestReplayFrames(t *testing.T) {
	g := NewGomegaWithT(t)

	steps := replay(t, load(t, `
frames:
  - cursor: [400, 300]
    scroll: [1]
  - cursor: [400, 300]
    scroll: [1]
    no_pick: true
  - scroll: [1]
  - cursor: [400, 300]
    pressed: [escape]
  - cursor: [400, 300]
    scroll: [2]
    mode: orthographic
`))

	g.Expect(steps[0].Command.Type).To(Equal(camctl.TranslationZoom))
	// Without a pick the previous command is kept.
	g.Expect(steps[1].Command).To(Equal(steps[0].Command))
	g.Expect(steps[2].Command).To(Equal(camctl.DefaultCommand()))
	g.Expect(steps[3].Command.Type).To(Equal(camctl.DeselectOrbitPivot))

	g.Expect(steps[4].Mode).To(Equal(camctl.Orthographic))
	g.Expect(steps[4].Command.Type).To(Equal(camctl.ScaleZoom))
	g.Expect(steps[4].Command.ScaleDelta).To(BeNumerically("~", -2.0, 1e-5))
	g.Expect(steps[4].Camera.Projection.Scale).To(BeNumerically("~", 8.0, 1e-5))
}

func TestReplayHitOverride(t *testing.T) {
	g := NewGomegaWithT(t)

	steps := replay(t, load(t, `
frames:
  - cursor: [400, 300]
    pressed: [right]
    hit: [1, 2, 3]
`))

	g.Expect(steps[0].Pivot).To(Equal(mgl32.Vec3{1, 2, 3}))
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unknown field", header + "speed: 1\n"},
		{"bad viewport", strings.Replace(header, "[800, 600]", "[800]", 1)},
		{"bad camera", strings.Replace(header, "[0, -10, 10]", "[0, -10]", 1)},
		{"bad mode", header + "mode: isometric\n"},
		{"bad input", header + "frames:\n  - held: [thumb]\n"},
		{"bad motion", header + "frames:\n  - motion: [[1, 2, 3]]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGomegaWithT(t)

			_, err := trace.Load(strings.NewReader(tc.input))
			g.Expect(err).To(HaveOccurred())
		})
	}
}

func TestLoadInvalidTraceType(t *testing.T) {
	g := NewGomegaWithT(t)

	_, err := trace.Load(strings.NewReader(header + "frames:\n  - cursor: [1]\n"))
	g.Expect(errorx.IsOfType(err, trace.InvalidTrace)).To(BeTrue())
}

func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

func TestReplayModeSwitchDuringDrag(t *testing.T) {
	g := NewGomegaWithT(t)

	steps := replay(t, load(t, `
frames:
  - cursor: [410, 300]
    motion: [[10, 0]]
    pressed: [right]
    hit: [1, 1, 0]
  - cursor: [420, 300]
    motion: [[10, 0]]
    held: [right]
    hit: [-2, 3, 0]
    mode: orthographic
`))

	g.Expect(steps[0].Command.CursorAnchor).To(Equal(mgl32.Vec3{1, 1, 0}))
	g.Expect(steps[1].Mode).To(Equal(camctl.Orthographic))
	g.Expect(steps[1].Command.Type).To(Equal(camctl.Pan))
	g.Expect(steps[1].Command.CursorAnchor).To(Equal(mgl32.Vec3{-2, 3, 0}))
}
