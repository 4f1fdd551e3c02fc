//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"sparselife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a small status readout on top of the simulation view.
type Overlay struct {
	sim     core.Sim
	stats   *core.Stats
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim, stats *core.Stats) *Overlay {
	return &Overlay{sim: sim, stats: stats, visible: true}
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}

	lines := []string{o.sim.Name()}
	if reporter, ok := o.sim.(core.StateReporter); ok {
		lines = append(lines,
			fmt.Sprintf("gen %d  pop %d  dirty %d", reporter.Generation(), reporter.Population(), reporter.Pending()),
		)
	}
	if o.stats != nil && o.stats.GenerationsPerSecond > 0 {
		lines = append(lines, fmt.Sprintf("%.1f gen/s  avg pop %.0f", o.stats.GenerationsPerSecond, o.stats.AveragePopulation))
	}
	if paused {
		lines = append(lines, "PAUSED  (space to run, n to step)")
	}

	face := basicfont.Face7x13
	y := face.Metrics().Height.Ceil() + 4
	for _, line := range lines {
		// Drop shadow keeps the text readable over live cells.
		text.Draw(screen, line, face, 7, y+1, color.Black)
		text.Draw(screen, line, face, 6, y, color.RGBA{R: 140, G: 255, B: 140, A: 255})
		y += face.Metrics().Height.Ceil() + 3
	}
}
