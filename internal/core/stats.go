package core

import "time"

// Stats tracks simulation throughput for the overlay and benchmark output.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int64
	ActiveCells          int
	PendingCells         int
	StartTime            time.Time
}

// NewStats returns a Stats anchored at the current time.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation and its cost.
func (s *Stats) Update(generation int64, population, pending int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.PendingCells = pending
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average keeps the readout stable.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}
