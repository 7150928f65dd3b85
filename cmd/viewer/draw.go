package main

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
	"golang.org/x/image/colornames"
)

var (
	gridColor   color.Color = colornames.Dimgray
	axisColor   color.Color = colornames.Lightgrey
	pivotColor  color.Color = colornames.Orange
	anchorColor color.Color = colornames.Deepskyblue
)

func isTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func drawGrid(screen *ebiten.Image, cam gfx.Camera, viewport mgl32.Vec2, halfExtent float32) {
	n := int(math32.Ceil(halfExtent))
	for i := -n; i <= n; i++ {
		c := gridColor
		if i == 0 {
			c = axisColor
		}
		// Lines are drawn in unit segments so that segments behind a
		// perspective camera can be dropped individually.
		for j := -n; j < n; j++ {
			u, v := float32(i), float32(j)
			drawSegment(screen, cam, viewport, mgl32.Vec3{u, v, 0}, mgl32.Vec3{u, v + 1, 0}, c)
			drawSegment(screen, cam, viewport, mgl32.Vec3{v, u, 0}, mgl32.Vec3{v + 1, u, 0}, c)
		}
	}
}

func drawSegment(screen *ebiten.Image, cam gfx.Camera, viewport mgl32.Vec2, a, b mgl32.Vec3, c color.Color) {
	pa, ok := cam.WorldToScreen(a, viewport)
	if !ok {
		return
	}
	pb, ok := cam.WorldToScreen(b, viewport)
	if !ok {
		return
	}
	vector.StrokeLine(screen, pa.X(), pa.Y(), pb.X(), pb.Y(), 1, c, true)
}

func drawMarker(screen *ebiten.Image, cam gfx.Camera, viewport mgl32.Vec2, p mgl32.Vec3, c color.Color) {
	s, ok := cam.WorldToScreen(p, viewport)
	if !ok {
		return
	}
	const r = 6
	vector.StrokeLine(screen, s.X()-r, s.Y(), s.X()+r, s.Y(), 2, c, true)
	vector.StrokeLine(screen, s.X(), s.Y()-r, s.X(), s.Y()+r, 2, c, true)
}

func drawHUD(screen *ebiten.Image, mode camctl.ProjectionMode, cmd camctl.Command, cam gfx.Camera) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%v %v\nposition %.2f %.2f %.2f\nfov %.1f scale %.2f\nP: toggle projection",
		mode, cmd.Type,
		cam.Translation.X(), cam.Translation.Y(), cam.Translation.Z(),
		mgl32.RadToDeg(cam.Projection.FOV), cam.Projection.Scale,
	))
}
