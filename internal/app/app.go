//go:build ebiten

package app

import (
	"image/color"
	"time"

	"arctic-room/internal/core"
	"arctic-room/internal/monitoring"
	"arctic-room/internal/render"
	"arctic-room/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type doneReporter interface {
	Done() bool
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. A positive hudWidth
// adds a parameter panel to the right of the room.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	scale = max(scale, 1)
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		monitoring.Logf("viewer: reseeding with %d", seed)
		if err := g.Reset(seed); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.hud.Update(g.roomWidth())

	if d, ok := g.sim.(doneReporter); ok && d.Done() {
		return nil
	}
	if !g.paused || g.tickOnce {
		g.tickOnce = false
		return g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.roomWidth(), g.roomHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.roomWidth() + g.hud.Width(), max(g.roomHeight(), g.hud.Height())
}

func (g *Game) roomWidth() int  { return g.sim.Size().W * g.scale }
func (g *Game) roomHeight() int { return g.sim.Size().H * g.scale }
