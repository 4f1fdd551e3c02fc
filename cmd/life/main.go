//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sparselife/internal/app"
	"sparselife/internal/core"
	_ "sparselife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "optional JSON config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfgPath != "" {
		if err := cfg.LoadFile(cfgPath); err != nil {
			log.Fatal(err)
		}
		// Reparse so explicit command-line flags win over file values.
		flag.Parse()
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("sparselife — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
