package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement for the
// front ends: a render buffer of 0/1 bytes plus reset and stepping.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Editable is implemented by simulations whose cells can be toggled one at
// a time, e.g. by mouse painting. Coordinates outside the grid are no-ops.
type Editable interface {
	SetCell(x, y int, alive bool)
	Alive(x, y int) bool
}

// StateReporter exposes counters for the overlay and benchmark output.
type StateReporter interface {
	Generation() int64
	Population() int
	Pending() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
