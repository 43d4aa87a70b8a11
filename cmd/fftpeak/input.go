package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/fftpeak/dsp/signal"
)

// inputFile is the on-disk form of one captured block.
//
//	sample_rate: 8000
//	samples: [0, 23170, 32767, ...]
type inputFile struct {
	SampleRate float64 `yaml:"sample_rate"`
	Samples    []int16 `yaml:"samples"`
}

// loadInput reads a block from a YAML file. The returned sample rate is zero
// when the file does not specify one.
func loadInput(path string) (*signal.RawBlock, float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, 0, fmt.Errorf("parse input %s: %w", path, err)
	}
	if in.SampleRate < 0 {
		return nil, 0, fmt.Errorf("input %s: sample_rate must be > 0: %g", path, in.SampleRate)
	}

	raw, err := signal.RawBlockFromSlice(in.Samples)
	if err != nil {
		return nil, 0, fmt.Errorf("input %s: %w", path, err)
	}
	return raw, in.SampleRate, nil
}
