package camctl_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
	. "github.com/onsi/gomega"
)

const maxSelectionDist = 30

func pickRay(origin, dir mgl32.Vec3) camctl.RayPick {
	return camctl.RayPick{Ray: gfx.Ray{Origin: origin, Direction: dir}}
}

func TestResolveAnchorPrefersHit(t *testing.T) {
	g := NewGomegaWithT(t)

	pick := pickRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})
	pick.Hit = mgl32.Vec3{1, 2, 3}
	pick.HasHit = true

	g.Expect(camctl.ResolveAnchor(pick, maxSelectionDist)).To(Equal(mgl32.Vec3{1, 2, 3}))
}

func TestResolveAnchorGroundPlane(t *testing.T) {
	g := NewGomegaWithT(t)

	p := camctl.ResolveAnchor(pickRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0.6, -0.8}), maxSelectionDist)
	g.Expect(near(p, mgl32.Vec3{0, 7.5, 0}, 1e-5)).To(BeTrue(), "got %v", p)

	// Direction does not need to be normalized.
	p = camctl.ResolveAnchor(pickRay(mgl32.Vec3{4, 4, 2}, mgl32.Vec3{0, 0, -5}), maxSelectionDist)
	g.Expect(near(p, mgl32.Vec3{4, 4, 0}, 1e-5)).To(BeTrue(), "got %v", p)

	// Below the ground looking up.
	p = camctl.ResolveAnchor(pickRay(mgl32.Vec3{0, 0, -2}, mgl32.Vec3{0, 0, 1}), maxSelectionDist)
	g.Expect(near(p, mgl32.Vec3{0, 0, 0}, 1e-5)).To(BeTrue(), "got %v", p)
}

func TestResolveAnchorTooFarFallsBackToSphere(t *testing.T) {
	g := NewGomegaWithT(t)

	origin := mgl32.Vec3{0, 0, 10}
	dir := mgl32.Vec3{1, 0, -0.1}.Normalize()

	p := camctl.ResolveAnchor(pickRay(origin, dir), maxSelectionDist)
	g.Expect(near(p, origin.Add(dir.Mul(10)), 1e-5)).To(BeTrue(), "got %v", p)
}

func TestResolveAnchorParallelRay(t *testing.T) {
	g := NewGomegaWithT(t)

	// Height 0.5 is below the minimum sphere radius of 1.
	p := camctl.ResolveAnchor(pickRay(mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{1, 0, 0}), maxSelectionDist)
	g.Expect(near(p, mgl32.Vec3{1, 0, 0.5}, 1e-5)).To(BeTrue(), "got %v", p)
}

func TestResolveAnchorSky(t *testing.T) {
	g := NewGomegaWithT(t)

	origin := mgl32.Vec3{2, -1, 3}
	dir := mgl32.Vec3{0, 1, 0.5}.Normalize()

	p := camctl.ResolveAnchor(pickRay(origin, dir), maxSelectionDist)
	g.Expect(near(p, origin.Add(dir.Mul(3)), 1e-5)).To(BeTrue(), "got %v", p)
	g.Expect(p.Sub(origin).Len()).To(BeNumerically("~", 3, 1e-5))
}

func TestResolveAnchorZeroDirection(t *testing.T) {
	g := NewGomegaWithT(t)

	p := camctl.ResolveAnchor(pickRay(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}), maxSelectionDist)
	g.Expect(p).To(Equal(mgl32.Vec3{1, 2, 3}))
}

func TestResolveAnchorIsAlwaysFinite(t *testing.T) {
	g := NewGomegaWithT(t)

	values := []float32{-1000, -3, -1, -1e-8, 0, 1e-8, 0.5, 2, 1000}
	for _, ox := range values {
		for _, oz := range values {
			for _, dx := range values {
				for _, dz := range values {
					origin := mgl32.Vec3{ox, 1, oz}
					dir := mgl32.Vec3{dx, 0.25, dz}
					p := camctl.ResolveAnchor(pickRay(origin, dir), maxSelectionDist)
					g.Expect(gfx.IsFinite(p)).To(BeTrue(), "origin %v dir %v", origin, dir)
				}
			}
		}
	}
}
