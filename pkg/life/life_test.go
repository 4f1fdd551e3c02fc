package life

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func mustNew(t *testing.T, w, h int) *Life {
	t.Helper()
	l, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return l
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 5},
		{5, -3},
		{0, 0},
	}
	for _, tc := range cases {
		if _, err := New(tc.w, tc.h); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("New(%d, %d) = %v, want ErrInvalidDimension", tc.w, tc.h, err)
		}
	}
}

func TestBorderStaysDead(t *testing.T) {
	l := mustNew(t, 8, 6)

	border := []int{
		0,
		len(l.live) - 1,
		l.Cell(-1, 0),
		l.Cell(8, 0),
		l.Cell(3, -1),
		l.Cell(3, 6),
	}
	for _, p := range border {
		l.Set(p, true)
	}
	// Indices outside storage entirely must be absorbed too.
	l.Set(-1, true)
	l.Set(len(l.live)+100, true)

	if l.Population() != 0 {
		t.Fatalf("population = %d after border writes, want 0", l.Population())
	}
	if l.Pending() != 0 {
		t.Fatalf("pending = %d after border writes, want 0", l.Pending())
	}
	for p, alive := range l.live {
		if alive {
			t.Fatalf("storage slot %d live after border writes", p)
		}
	}
}

func TestSetIdempotent(t *testing.T) {
	l := mustNew(t, 10, 10)
	p := l.Cell(4, 4)

	l.Set(p, true)
	pop := l.Population()
	pending := l.Pending()
	counts := append([]int(nil), l.neighbors...)

	l.Set(p, true)

	if l.Population() != pop {
		t.Fatalf("population changed on repeated set: %d -> %d", pop, l.Population())
	}
	if l.Pending() != pending {
		t.Fatalf("pending changed on repeated set: %d -> %d", pending, l.Pending())
	}
	for i, c := range l.neighbors {
		if counts[i] != c {
			t.Fatalf("neighbor count of slot %d changed on repeated set: %d -> %d", i, counts[i], c)
		}
	}
}

// bruteNeighbors recounts live neighbors of logical (x, y) the slow way.
func bruteNeighbors(l *Life, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.AliveAt(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

func checkNeighborCounts(t *testing.T, l *Life) {
	t.Helper()
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			want := bruteNeighbors(l, x, y)
			if got := l.neighbors[l.Cell(x, y)]; got != want {
				t.Fatalf("neighbor count at (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNeighborCountsStayExact(t *testing.T) {
	l := mustNew(t, 16, 12)
	rng := rand.New(rand.NewPCG(7, 0))

	for i := 0; i < 500; i++ {
		x := rng.IntN(l.w+4) - 2
		y := rng.IntN(l.h+4) - 2
		l.Set(l.Cell(x, y), rng.IntN(2) == 0)
	}
	checkNeighborCounts(t, l)

	l.Advance(5)
	checkNeighborCounts(t, l)
}

func checkExactLiveSet(t *testing.T, l *Life, want map[[2]int]bool) {
	t.Helper()
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			_, shouldBeAlive := want[[2]int{x, y}]
			if alive := l.AliveAt(x, y); alive != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	l := mustNew(t, 20, 20)
	block := map[[2]int]bool{
		{5, 5}: true,
		{5, 6}: true,
		{6, 5}: true,
		{6, 6}: true,
	}
	for c := range block {
		l.Set(l.Cell(c[0], c[1]), true)
	}

	for gen := 0; gen < 10; gen++ {
		l.Advance(1)
		checkExactLiveSet(t, l, block)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := mustNew(t, 20, 20)
	for _, c := range [][2]int{{5, 5}, {6, 5}, {7, 5}} {
		l.Set(l.Cell(c[0], c[1]), true)
	}

	l.Advance(1)
	checkExactLiveSet(t, l, map[[2]int]bool{
		{6, 4}: true,
		{6, 5}: true,
		{6, 6}: true,
	})

	l.Advance(1)
	checkExactLiveSet(t, l, map[[2]int]bool{
		{5, 5}: true,
		{6, 5}: true,
		{7, 5}: true,
	})
}

func TestGliderTranslation(t *testing.T) {
	const glider = `
.o.
..o
ooo`
	l := mustNew(t, 40, 40)
	l.Paste(glider, 10, 10)

	start := make(map[[2]int]bool)
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			if l.AliveAt(x, y) {
				start[[2]int{x, y}] = true
			}
		}
	}
	if len(start) != 5 {
		t.Fatalf("glider has %d live cells, want 5", len(start))
	}

	l.Advance(4)

	want := make(map[[2]int]bool, len(start))
	for c := range start {
		want[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	checkExactLiveSet(t, l, want)
}

func TestQuiescentBoardStaysQuiet(t *testing.T) {
	l := mustNew(t, 12, 12)
	l.Set(l.Cell(6, 6), true)

	// A lone cell dies of isolation, then the board settles.
	l.Advance(1)
	if l.Population() != 0 {
		t.Fatalf("population = %d after lone cell dies, want 0", l.Population())
	}
	l.Advance(1)
	if l.Pending() != 0 {
		t.Fatalf("pending = %d on settled board, want 0", l.Pending())
	}
	for i := 0; i < 5; i++ {
		l.Advance(1)
		if l.Pending() != 0 {
			t.Fatalf("pending = %d on quiescent board after %d extra steps, want 0", l.Pending(), i+1)
		}
	}
}

func TestPasteClipsAtEdges(t *testing.T) {
	const glider = `
.o.
..o
ooo`
	l := mustNew(t, 10, 10)

	l.Paste(glider, -2, -2)
	checkExactLiveSet(t, l, map[[2]int]bool{{0, 0}: true})

	l.Paste(glider, 8, 8)
	checkExactLiveSet(t, l, map[[2]int]bool{{0, 0}: true, {9, 8}: true})

	// An overhang of more than one cell must clip, not wrap onto
	// neighboring rows.
	before := l.Population()
	l.Paste("ooo", -3, 5)
	if l.Population() != before {
		t.Fatalf("population changed by fully out-of-range paste: %d -> %d", before, l.Population())
	}
	checkNeighborCounts(t, l)
}

func TestPasteTrimsWhitespace(t *testing.T) {
	pattern := "\n\n    oo  \n    oo  \n\n"
	l := mustNew(t, 10, 10)
	l.Paste(pattern, 3, 3)
	checkExactLiveSet(t, l, map[[2]int]bool{
		{3, 3}: true,
		{4, 3}: true,
		{3, 4}: true,
		{4, 4}: true,
	})
}

func TestPasteOverwritesWithDeadCells(t *testing.T) {
	l := mustNew(t, 10, 10)
	l.Set(l.Cell(4, 4), true)
	l.Paste("...\n...\n...", 3, 3)
	if l.Population() != 0 {
		t.Fatalf("population = %d after pasting dead block, want 0", l.Population())
	}
}

func TestClear(t *testing.T) {
	l := mustNew(t, 16, 16)
	rng := rand.New(rand.NewPCG(3, 0))
	for i := 0; i < 100; i++ {
		l.Set(l.Cell(rng.IntN(16), rng.IntN(16)), true)
	}
	if l.Population() == 0 {
		t.Fatal("expected live cells before Clear")
	}

	l.Clear()
	if l.Population() != 0 {
		t.Fatalf("population = %d after Clear, want 0", l.Population())
	}
	checkNeighborCounts(t, l)

	l.Advance(2)
	if l.Pending() != 0 {
		t.Fatalf("pending = %d after clearing and settling, want 0", l.Pending())
	}
}

// denseStep computes the next generation with a full-board scan, as a
// reference for the incremental engine.
func denseStep(cells [][]bool) [][]bool {
	h := len(cells)
	w := len(cells[0])
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if cells[ny][nx] {
						neighbors++
					}
				}
			}
			alive := cells[y][x]
			next[y][x] = (alive && neighbors == 2) || neighbors == 3
		}
	}
	return next
}

func TestAdvanceMatchesDenseReference(t *testing.T) {
	const w, h = 32, 32
	l := mustNew(t, w, h)
	ref := make([][]bool, h)
	for y := range ref {
		ref[y] = make([]bool, w)
	}

	rng := rand.New(rand.NewPCG(11, 0))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < 0.3 {
				l.Set(l.Cell(x, y), true)
				ref[y][x] = true
			}
		}
	}

	for gen := 0; gen < 20; gen++ {
		l.Advance(1)
		ref = denseStep(ref)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if l.AliveAt(x, y) != ref[y][x] {
					t.Fatalf("generation %d: cell (%d,%d) alive=%v, reference says %v",
						gen+1, x, y, l.AliveAt(x, y), ref[y][x])
				}
			}
		}
		checkNeighborCounts(t, l)
	}
}

func TestAdvanceManyStepsAtOnce(t *testing.T) {
	a := mustNew(t, 20, 20)
	b := mustNew(t, 20, 20)
	for _, c := range [][2]int{{5, 5}, {6, 5}, {7, 5}, {7, 4}, {6, 3}} {
		a.Set(a.Cell(c[0], c[1]), true)
		b.Set(b.Cell(c[0], c[1]), true)
	}

	a.Advance(8)
	for i := 0; i < 8; i++ {
		b.Advance(1)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if a.AliveAt(x, y) != b.AliveAt(x, y) {
				t.Fatalf("batched and single stepping disagree at (%d,%d)", x, y)
			}
		}
	}
}
