// Command lifebench measures incremental-update throughput for seed
// patterns: each scenario runs on its own board, scenarios run in
// parallel, boards themselves stay single-threaded.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"sparselife/internal/core"
	"sparselife/pkg/life"
	"sparselife/pkg/patterns"
)

type patternList []string

func (l *patternList) String() string {
	return strings.Join(*l, ",")
}

func (l *patternList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenarioResult struct {
	name        string
	elapsed     time.Duration
	finalPop    int
	avgPop      float64
	peakPending int
}

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	width := flag.Int("width", 256, "board width for benchmark runs")
	height := flag.Int("height", 256, "board height for benchmark runs")
	var names patternList
	flag.Var(&names, "pattern", "pattern to benchmark (repeatable, default all)")
	flag.Parse()

	if len(names) == 0 {
		names = patternList(patterns.Names())
	}

	results := make([]scenarioResult, len(names))
	var eg errgroup.Group
	eg.SetLimit(*workers)
	for i, name := range names {
		eg.Go(func() error {
			res, err := runScenario(name, *width, *height, *steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("lifebench: %v", err)
	}

	fmt.Printf("%d generations on a %dx%d board\n\n", *steps, *width, *height)
	fmt.Printf("%-12s %12s %10s %10s %10s %12s\n", "pattern", "elapsed", "gen/s", "pop", "avg pop", "peak dirty")
	for _, res := range results {
		gps := float64(*steps) / res.elapsed.Seconds()
		fmt.Printf("%-12s %12s %10.0f %10d %10.0f %12d\n",
			res.name, res.elapsed.Round(time.Microsecond), gps, res.finalPop, res.avgPop, res.peakPending)
	}
}

func runScenario(name string, width, height, steps int) (scenarioResult, error) {
	pattern, ok := patterns.Lookup(name)
	if !ok {
		return scenarioResult{}, errors.Errorf("unknown pattern %q", name)
	}
	board, err := life.New(width, height)
	if err != nil {
		return scenarioResult{}, errors.Wrapf(err, "scenario %s", name)
	}
	board.Paste(pattern, width/4, height/4)

	stats := core.NewStats()
	res := scenarioResult{name: name}
	start := time.Now()
	for i := 0; i < steps; i++ {
		stepStart := time.Now()
		board.Advance(1)
		stats.Update(int64(i+1), board.Population(), board.Pending(), time.Since(stepStart))
		if board.Pending() > res.peakPending {
			res.peakPending = board.Pending()
		}
	}
	res.elapsed = time.Since(start)
	res.finalPop = board.Population()
	res.avgPop = stats.AveragePopulation
	return res, nil
}
