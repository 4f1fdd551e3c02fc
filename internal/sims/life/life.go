// Package life adapts the incremental Game of Life engine to the core.Sim
// contract used by the front ends.
package life

import (
	"strconv"

	"sparselife/internal/core"
	pkgcore "sparselife/pkg/core"
	engine "sparselife/pkg/life"
	"sparselife/pkg/patterns"
)

// Config holds parameters for the life simulation.
type Config struct {
	Width   int
	Height  int
	Density float64
	Pattern string
	OriginX int
	OriginY int
}

// DefaultConfig mirrors the classic demo setup: the Gosper gun pasted near
// the top-left corner of a 140x120 board.
func DefaultConfig() Config {
	return Config{
		Width:   140,
		Height:  120,
		Density: 0.15,
		Pattern: "gosper-gun",
		OriginX: 8,
		OriginY: 1,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["px"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["py"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginY = parsed
		}
	}
	return c
}

// Sim drives an engine instance and maintains a logical-grid display buffer.
type Sim struct {
	eng        *engine.Life
	cfg        Config
	cells      []uint8
	generation int64
}

// New returns a life simulation with the provided dimensions and defaults
// for everything else.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a life simulation configured from the provided options.
func NewWithConfig(cfg Config) *Sim {
	eng, err := engine.New(cfg.Width, cfg.Height)
	if err != nil {
		cfg.Width, cfg.Height = 1, 1
		eng, _ = engine.New(1, 1)
	}
	s := &Sim{
		eng:   eng,
		cfg:   cfg,
		cells: make([]uint8, cfg.Width*cfg.Height),
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current display buffer.
func (s *Sim) Cells() []uint8 { return s.cells }

// Engine exposes the underlying board for callers that need the full API.
func (s *Sim) Engine() *engine.Life { return s.eng }

// Reset clears the board, then either pastes the configured pattern or,
// when no pattern is set, sows a random soup at the configured density.
func (s *Sim) Reset(seed int64) {
	s.eng.Clear()
	s.generation = 0

	if s.cfg.Pattern != "" {
		if p, ok := patterns.Lookup(s.cfg.Pattern); ok {
			s.eng.Paste(p, s.cfg.OriginX, s.cfg.OriginY)
		}
	} else {
		rng := pkgcore.NewRNG(seed)
		for y := 0; y < s.cfg.Height; y++ {
			for x := 0; x < s.cfg.Width; x++ {
				if rng.Chance(s.cfg.Density) {
					s.eng.Set(s.eng.Cell(x, y), true)
				}
			}
		}
	}
	s.refresh()
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.eng.Advance(1)
	s.generation++
	s.refresh()
}

// SetCell toggles a single logical cell, e.g. from mouse painting.
func (s *Sim) SetCell(x, y int, alive bool) {
	if x < 0 || x >= s.cfg.Width || y < 0 || y >= s.cfg.Height {
		return
	}
	s.eng.Set(s.eng.Cell(x, y), alive)
	s.cells[y*s.cfg.Width+x] = liveByte(alive)
}

// Alive reports the state of a single logical cell.
func (s *Sim) Alive(x, y int) bool { return s.eng.AliveAt(x, y) }

// Generation returns the number of completed generations since Reset.
func (s *Sim) Generation() int64 { return s.generation }

// Population returns the number of live cells.
func (s *Sim) Population() int { return s.eng.Population() }

// Pending returns the number of cells the next generation will examine.
func (s *Sim) Pending() int { return s.eng.Pending() }

// Clear kills every cell on the board.
func (s *Sim) Clear() {
	s.eng.Clear()
	s.generation = 0
	s.refresh()
}

func (s *Sim) refresh() {
	w := s.cfg.Width
	for y := 0; y < s.cfg.Height; y++ {
		for x := 0; x < w; x++ {
			s.cells[y*w+x] = liveByte(s.eng.AliveAt(x, y))
		}
	}
}

func liveByte(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
