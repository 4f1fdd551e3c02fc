//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/render"
	"sparselife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type clearable interface {
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface, with mouse
// painting for editable simulations.
type Game struct {
	sim      core.Sim
	editable core.Editable
	painter  *render.GridPainter
	overlay  *ui.Overlay
	fixed    *core.FixedStep
	stats    *core.Stats

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	drawing  bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		fixed:    core.NewFixedStep(tps),
		stats:    core.NewStats(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	g.overlay = ui.NewOverlay(sim, g.stats)
	if editable, ok := sim.(core.Editable); ok {
		g.editable = editable
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if !g.paused {
			g.fixed.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearable); ok {
			c.Clear()
		}
	}

	g.handlePainting()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.tickOnce {
		g.step()
		g.tickOnce = false
	} else if !g.paused && g.fixed.ShouldStep() {
		g.step()
	}
	return nil
}

func (g *Game) step() {
	start := time.Now()
	g.sim.Step()
	if reporter, ok := g.sim.(core.StateReporter); ok {
		g.stats.Update(reporter.Generation(), reporter.Population(), reporter.Pending(), time.Since(start))
	}
}

// handlePainting pauses the simulation and toggles cells under the cursor.
// The polarity is chosen at press time: clicking a live cell erases while
// dragging, clicking a dead cell draws.
func (g *Game) handlePainting() {
	if g.editable == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy, ok := g.screenCell(ebiten.CursorPosition())
		if !ok {
			return
		}
		g.paused = true
		g.drawing = !g.editable.Alive(cx, cy)
		g.editable.SetCell(cx, cy, g.drawing)
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if cx, cy, ok := g.screenCell(ebiten.CursorPosition()); ok {
			g.paused = true
			g.editable.SetCell(cx, cy, g.drawing)
		}
	}
}

// screenCell translates a pixel position into logical cell coordinates.
func (g *Game) screenCell(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	cx, cy := px/g.scale, py/g.scale
	size := g.sim.Size()
	if cx >= size.W || cy >= size.H {
		return 0, 0, false
	}
	return cx, cy, true
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
