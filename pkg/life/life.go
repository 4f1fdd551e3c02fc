// Package life implements Conway's Game of Life on a bounded grid with
// incremental updates: neighbor counts are maintained cell by cell and a
// dirty set limits each generation to the region that actually changed.
package life

import (
	"strings"

	"github.com/pkg/errors"
)

// AliveMarker is the character that marks a live cell in pasted patterns.
const AliveMarker = 'o'

// ErrInvalidDimension reports a non-positive width or height at construction.
var ErrInvalidDimension = errors.New("life: grid dimensions must be positive")

// Life simulates a bounded board surrounded by a one-cell sentinel border.
// The border is permanently dead, so neighbor lookups on interior cells
// never need a bounds check.
type Life struct {
	w, h   int
	stride int

	live      []bool
	inBounds  []bool
	neighbors []int

	dirty      map[int]struct{}
	offsets    [8]int
	population int
}

// New returns a Life board of the given logical dimensions. Storage is
// over-allocated by one cell on every side for the sentinel border.
func New(width, height int) (*Life, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "life.New(%d, %d)", width, height)
	}

	stride := width + 2
	total := stride * (height + 2)
	l := &Life{
		w:         width,
		h:         height,
		stride:    stride,
		live:      make([]bool, total),
		inBounds:  make([]bool, total),
		neighbors: make([]int, total),
		dirty:     make(map[int]struct{}),
	}

	for i := range l.inBounds {
		l.inBounds[i] = true
	}
	for i := 0; i < stride; i++ {
		l.inBounds[i] = false
		l.inBounds[total-1-i] = false
	}
	for y := 0; y < height; y++ {
		row := (y + 1) * stride
		l.inBounds[row] = false
		l.inBounds[row+stride-1] = false
	}

	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			l.offsets[i] = dy*stride + dx
			i++
		}
	}
	return l, nil
}

// Width returns the logical board width.
func (l *Life) Width() int { return l.w }

// Height returns the logical board height.
func (l *Life) Height() int { return l.h }

// Cell returns the storage index for logical coordinates (x, y). It does
// not validate its inputs; mutation entry points reject indices that fall
// outside the playable interior.
func (l *Life) Cell(x, y int) int {
	return l.stride*(y+1) + x + 1
}

// Alive reports whether storage index p holds a live cell. Indices outside
// allocated storage report dead.
func (l *Life) Alive(p int) bool {
	if p < 0 || p >= len(l.live) {
		return false
	}
	return l.live[p]
}

// AliveAt reports whether the logical cell (x, y) is live. Coordinates
// outside the board report dead.
func (l *Life) AliveAt(x, y int) bool {
	if x < 0 || x >= l.w || y < 0 || y >= l.h {
		return false
	}
	return l.live[l.Cell(x, y)]
}

// Set assigns the live state of storage index p. Setting a cell to its
// current state, a border cell, or an index outside storage is a no-op.
// On a real change the 8 neighbors' counts are adjusted and the cell plus
// its neighbors join the dirty set for the next generation.
func (l *Life) Set(p int, alive bool) {
	if p < 0 || p >= len(l.live) {
		return
	}
	if !l.inBounds[p] || l.live[p] == alive {
		return
	}

	l.live[p] = alive
	l.dirty[p] = struct{}{}
	adjust := 1
	if !alive {
		adjust = -1
	}
	l.population += adjust

	// Interior cells always have all 8 neighbor slots inside storage,
	// that is what the sentinel border buys.
	for _, off := range l.offsets {
		n := p + off
		if l.inBounds[n] {
			l.neighbors[n] += adjust
			l.dirty[n] = struct{}{}
		}
	}
}

type cellUpdate struct {
	p         int
	alive     bool
	neighbors int
}

// Advance steps the simulation forward by the given number of generations.
// Each generation snapshots the dirty set, clears it, and only then applies
// the birth/survival rule, so every rule evaluation reads the previous
// generation's state. A quiescent board costs nothing per step.
func (l *Life) Advance(steps int) {
	for s := 0; s < steps; s++ {
		if len(l.dirty) == 0 {
			return
		}
		snapshot := make([]cellUpdate, 0, len(l.dirty))
		for p := range l.dirty {
			snapshot = append(snapshot, cellUpdate{p: p, alive: l.live[p], neighbors: l.neighbors[p]})
		}
		clear(l.dirty)

		for _, u := range snapshot {
			if u.alive && (u.neighbors < 2 || u.neighbors > 3) {
				l.Set(u.p, false)
			} else if !u.alive && u.neighbors == 3 {
				l.Set(u.p, true)
			}
		}
	}
}

// Paste writes a newline-separated pattern block onto the board with its
// top-left corner at logical (x, y). AliveMarker cells become live, any
// other character dead. Whitespace is trimmed around the block and each
// line. Cells that fall outside the board are clipped.
func (l *Life) Paste(pattern string, x, y int) {
	for j, line := range strings.Split(strings.TrimSpace(pattern), "\n") {
		line = strings.TrimSpace(line)
		for i, ch := range line {
			cx, cy := x+i, y+j
			if cx < 0 || cx >= l.w || cy < 0 || cy >= l.h {
				continue
			}
			l.Set(l.Cell(cx, cy), ch == AliveMarker)
		}
	}
}

// Population returns the number of live cells.
func (l *Life) Population() int { return l.population }

// Pending returns the size of the dirty set, the number of cells the next
// generation will examine.
func (l *Life) Pending() int { return len(l.dirty) }

// Clear kills every live cell through the normal mutation path, keeping
// neighbor counts and the dirty set consistent.
func (l *Life) Clear() {
	for p, alive := range l.live {
		if alive {
			l.Set(p, false)
		}
	}
}
