// Package patterns holds named Game of Life seed patterns in the text form
// understood by life.Paste: 'o' marks a live cell, any other character dead.
package patterns

import "sort"

// Block is the smallest still life.
const Block = `
oo
oo`

// Blinker is the period-2 oscillator, horizontal phase.
const Blinker = `
ooo`

// Beacon is a period-2 oscillator built from two diagonal blocks.
const Beacon = `
oo..
oo..
..oo
..oo`

// Glider travels one cell down and one cell right every 4 generations.
const Glider = `
.o.
..o
ooo`

// LWSS is the lightweight spaceship, travelling left at c/2.
const LWSS = `
.o..o
o....
o...o
oooo.`

// GosperGun emits a glider every 30 generations.
const GosperGun = `
........................o...........
......................o.o...........
............oo......oo............oo
...........o...o....oo............oo
oo........o.....o...oo..............
oo........o...o.oo....o.o...........
..........o.....o.......o...........
...........o...o....................
............oo......................`

var index = map[string]string{
	"block":      Block,
	"blinker":    Blinker,
	"beacon":     Beacon,
	"glider":     Glider,
	"lwss":       LWSS,
	"gosper-gun": GosperGun,
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (string, bool) {
	p, ok := index[name]
	return p, ok
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
