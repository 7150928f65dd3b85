package camctl_test

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/viewcam/pkg/camctl"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

type gesture struct {
	keys    camctl.KeyState
	buttons camctl.ButtonState
	motion  mgl32.Vec2
	scroll  float32
	prev    camctl.CommandType
	mode    camctl.ProjectionMode
}

func (g gesture) classify() camctl.CommandType {
	return camctl.Classify(g.keys, g.buttons, g.motion, g.scroll, g.prev, g.mode)
}

var (
	moved      = mgl32.Vec2{4, -2}
	shift      = camctl.KeyState{Pressed: camctl.KeyShift}
	escape     = camctl.KeyState{Pressed: camctl.KeyEscape, JustPressed: camctl.KeyEscape}
	right      = camctl.ButtonState{Pressed: camctl.ButtonRight}
	rightClick = camctl.ButtonState{Pressed: camctl.ButtonRight, JustPressed: camctl.ButtonRight}
	middle     = camctl.ButtonState{Pressed: camctl.ButtonMiddle}
)

var _ = Describe("Classify", func() {
	DescribeTable("gesture priority",
		func(g gesture, want camctl.CommandType) {
			Expect(g.classify()).To(Equal(want))
		},
		Entry("idle", gesture{}, camctl.Inactive),
		Entry("right drag pans", gesture{buttons: right, motion: moved}, camctl.Pan),
		Entry("pan wins over scroll", gesture{buttons: right, motion: moved, scroll: 1}, camctl.Pan),
		Entry("right click with motion pans instead of selecting", gesture{buttons: rightClick, motion: moved}, camctl.Pan),
		Entry("shift right drag orbits", gesture{keys: shift, buttons: right, motion: moved}, camctl.Orbit),
		Entry("shift right hold orbits without motion", gesture{keys: shift, buttons: right}, camctl.Orbit),
		Entry("middle drag orbits", gesture{buttons: middle, motion: moved}, camctl.Orbit),
		Entry("middle hold does nothing", gesture{buttons: middle}, camctl.Inactive),
		Entry("left drag does nothing", gesture{buttons: camctl.ButtonState{Pressed: camctl.ButtonLeft}, motion: moved}, camctl.Inactive),
		Entry("orthographic scroll scales", gesture{scroll: -1, mode: camctl.Orthographic}, camctl.ScaleZoom),
		Entry("orthographic shift scroll scales", gesture{keys: shift, scroll: 1, mode: camctl.Orthographic}, camctl.ScaleZoom),
		Entry("perspective scroll dollies", gesture{scroll: 1}, camctl.TranslationZoom),
		Entry("perspective shift scroll zooms fov", gesture{keys: shift, scroll: 1}, camctl.FOVZoom),
		Entry("right click selects pivot", gesture{buttons: rightClick}, camctl.SelectOrbitPivot),
		Entry("held right does not select again", gesture{buttons: right, prev: camctl.SelectOrbitPivot}, camctl.Inactive),
		Entry("right click right after a pan does not select", gesture{buttons: rightClick, prev: camctl.Pan}, camctl.Inactive),
		Entry("escape clears pivot", gesture{keys: escape}, camctl.DeselectOrbitPivot),
		Entry("escape clears pivot after a gesture", gesture{keys: escape, prev: camctl.Orbit}, camctl.DeselectOrbitPivot),
		Entry("held escape does nothing", gesture{keys: camctl.KeyState{Pressed: camctl.KeyEscape}}, camctl.Inactive),
		Entry("orthographic right click does nothing", gesture{buttons: rightClick, mode: camctl.Orthographic}, camctl.Inactive),
		Entry("orthographic escape does nothing", gesture{keys: escape, mode: camctl.Orthographic}, camctl.Inactive),
		Entry("select wins over deselect", gesture{keys: escape, buttons: rightClick}, camctl.SelectOrbitPivot),
	)

	It("is deterministic", func() {
		g := gesture{keys: shift, buttons: rightClick, motion: moved, scroll: 2, prev: camctl.Pan}
		first := g.classify()
		for i := 0; i < 10; i++ {
			Expect(g.classify()).To(Equal(first))
		}
	})

	It("returns a known command type for every input combination", func() {
		known := map[camctl.CommandType]bool{}
		for _, t := range camctl.CommandTypes {
			known[t] = true
		}

		for _, keys := range []camctl.KeyState{{}, shift, escape} {
			for _, buttons := range []camctl.ButtonState{{}, right, rightClick, middle} {
				for _, motion := range []mgl32.Vec2{{}, moved} {
					for _, scroll := range []float32{0, 1} {
						for _, prev := range camctl.CommandTypes {
							for _, mode := range []camctl.ProjectionMode{camctl.Perspective, camctl.Orthographic} {
								got := camctl.Classify(keys, buttons, motion, scroll, prev, mode)
								Expect(known[got]).To(BeTrue())
							}
						}
					}
				}
			}
		}
	})
})
