package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Sim     string  `json:"sim"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Pattern string  `json:"pattern"`
	OriginX int     `json:"pattern_x"`
	OriginY int     `json:"pattern_y"`
}

// NewConfig returns a Config populated with the classic demo defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   140,
		Height:  120,
		Scale:   4,
		TPS:     30,
		Seed:    42,
		Density: 0.15,
		Pattern: "gosper-gun",
		OriginX: 8,
		OriginY: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "random soup density when no pattern is set")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name, empty for random soup")
	fs.IntVar(&c.OriginX, "px", c.OriginX, "pattern paste x origin")
	fs.IntVar(&c.OriginY, "py", c.OriginY, "pattern paste y origin")
}

// LoadFile overlays values from a JSON config file onto c. Missing or
// malformed files are reported as errors; bind flags after loading so the
// command line wins.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "config: read %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "config: parse %s", path)
	}
	return nil
}

// SimOptions converts the configuration into the string map consumed by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"pattern": c.Pattern,
		"px":      strconv.Itoa(c.OriginX),
		"py":      strconv.Itoa(c.OriginY),
	}
}
