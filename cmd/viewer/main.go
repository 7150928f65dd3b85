// Command viewer flies a camera over a ground grid with the mouse.
//
// Right drag pans, middle drag or shift+right drag orbits and the wheel zooms.
// A right click selects the orbit pivot and escape clears it. P toggles between
// the perspective and orthographic cameras. Edits to the settings file are
// picked up while running.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mgnsk/viewcam/internal/config"
	"github.com/mgnsk/viewcam/internal/ebiteninput"
	"github.com/mgnsk/viewcam/internal/scene"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"github.com/mgnsk/viewcam/pkg/gfx"
)

func main() {
	configPath := flag.String("config", "", "settings YAML file")
	ground := flag.Float64("ground", 20, "half extent of the ground grid")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reload <-chan camctl.Settings
	if *configPath != "" {
		reload, err = config.Watch(ctx, *configPath, func(err error) {
			log.Printf("viewer: %v", err)
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	registry := scene.NewRegistry()
	state := camctl.NewControlState(
		registry.Add(gfx.NewPerspectiveCamera(mgl32.Vec3{0, -15, 10}, mgl32.Vec3{}, mgl32.DegToRad(60))),
		registry.Add(gfx.NewOrthographicCamera(mgl32.Vec3{0, -15, 10}, mgl32.Vec3{}, 10)),
	)

	game := &Game{
		registry: registry,
		ctrl:     camctl.NewController(state, camctl.WithSettings(settings)),
		picker:   scene.GroundPicker{HalfExtent: float32(*ground)},
		reload:   reload,
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("viewcam")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// Game drives the controller from ebiten ticks.
type Game struct {
	registry *scene.Registry
	ctrl     *camctl.Controller
	picker   scene.GroundPicker
	source   ebiteninput.Source
	reload   <-chan camctl.Settings

	width, height int
}

// Update runs one controller frame.
func (g *Game) Update() error {
	select {
	case s := <-g.reload:
		g.ctrl.SetSettings(s)
		log.Print("viewer: settings reloaded")
	default:
	}

	state := g.ctrl.State()
	if isTogglePressed() {
		if state.Mode() == camctl.Perspective {
			g.ctrl.SetMode(camctl.Orthographic)
		} else {
			g.ctrl.SetMode(camctl.Perspective)
		}
	}

	frame, cursor := g.source.Frame(g.width, g.height)

	id := state.ActiveCamera()
	cam, ok := g.registry.Camera(id)
	if ok && frame.CursorInViewport {
		frame.Pick = g.picker.Pick(cam, cursor, frame.Viewport)
	}

	cmd, err := g.ctrl.Update(frame, g.registry)
	if err != nil {
		log.Printf("viewer: %v", err)
		return nil
	}

	if err := g.registry.Apply(id, cmd, g.ctrl.Settings()); err != nil {
		log.Printf("viewer: %v", err)
	}

	return nil
}

// Draw renders the ground grid through the active camera.
func (g *Game) Draw(screen *ebiten.Image) {
	state := g.ctrl.State()
	cam, ok := g.registry.Camera(state.ActiveCamera())
	if !ok {
		return
	}
	viewport := mgl32.Vec2{float32(g.width), float32(g.height)}

	drawGrid(screen, cam, viewport, g.picker.HalfExtent)

	if pivot, ok := state.OrbitPivot(); ok {
		drawMarker(screen, cam, viewport, pivot, pivotColor)
	}
	if cmd := g.ctrl.Command(); cmd.HasAnchor {
		drawMarker(screen, cam, viewport, cmd.CursorAnchor, anchorColor)
	}

	drawHUD(screen, state.Mode(), g.ctrl.Command(), cam)
}

// Layout uses the window size as the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
