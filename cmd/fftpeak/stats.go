package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summary describes the FFT execution times of repeated runs in microseconds.
type summary struct {
	Runs   int     `json:"runs" yaml:"runs"`
	Min    float64 `json:"min_us" yaml:"min_us"`
	Mean   float64 `json:"mean_us" yaml:"mean_us"`
	StdDev float64 `json:"stddev_us" yaml:"stddev_us"`
	Max    float64 `json:"max_us" yaml:"max_us"`
}

func summarize(us []float64) summary {
	s := summary{Runs: len(us)}
	switch len(us) {
	case 0:
		return s
	case 1:
		s.Min, s.Mean, s.Max = us[0], us[0], us[0]
		return s
	}
	s.Min = floats.Min(us)
	s.Max = floats.Max(us)
	s.Mean, s.StdDev = stat.MeanStdDev(us, nil)
	return s
}
