package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/fftpeak/dsp/core"
	"github.com/cwbudde/fftpeak/dsp/fft"
)

// Component is one sinusoid in a synthesized block. Amplitude is relative to
// full scale (1.0 = full-scale peak).
type Component struct {
	FrequencyHz float64
	Amplitude   float64
	Phase       float64 // radians
}

// Mix describes a synthesized block: a DC offset, a sum of sinusoids and
// optional uniform noise, all relative to full scale.
type Mix struct {
	DC    float64
	Tones []Component
	Noise float64
}

// Generator creates deterministic fixed-point blocks from a shared configuration.
type Generator struct {
	cfg  core.AnalysisConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured block generator.
func NewGenerator(opts ...core.AnalysisOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.AnalysisOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyAnalysisOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() core.AnalysisConfig {
	return g.cfg
}

// Tone synthesizes a single sinusoid starting at phase 0 (a sine).
func (g *Generator) Tone(freqHz, amplitude float64) (*RawBlock, error) {
	return g.Synthesize(Mix{Tones: []Component{{FrequencyHz: freqHz, Amplitude: amplitude}}})
}

// Synthesize renders m into a RawBlock, saturating at the int16 limits.
func (g *Generator) Synthesize(m Mix) (*RawBlock, error) {
	if err := g.validate(m); err != nil {
		return nil, err
	}

	var acc [fft.Size]float64
	for i := range acc {
		acc[i] = m.DC
	}

	for _, c := range m.Tones {
		step := 2 * math.Pi * c.FrequencyHz / g.cfg.SampleRate
		for n := range acc {
			acc[n] += c.Amplitude * math.Sin(step*float64(n)+c.Phase)
		}
	}

	if m.Noise > 0 {
		rng := rand.New(rand.NewSource(g.seed))
		for n := range acc {
			acc[n] += (rng.Float64()*2 - 1) * m.Noise
		}
	}

	raw := new(RawBlock)
	for n, v := range acc {
		raw[n] = Quantize(v, g.cfg.FullScale)
	}
	return raw, nil
}

func (g *Generator) validate(m Mix) error {
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	nyquist := g.cfg.SampleRate / 2
	for i, c := range m.Tones {
		if c.FrequencyHz < 0 || c.FrequencyHz > nyquist || math.IsNaN(c.FrequencyHz) {
			return fmt.Errorf("signal: tone %d frequency must be in [0, %g]: %g", i, nyquist, c.FrequencyHz)
		}
		if c.Amplitude < 0 || math.IsNaN(c.Amplitude) {
			return fmt.Errorf("signal: tone %d amplitude must be >= 0: %g", i, c.Amplitude)
		}
	}
	if m.Noise < 0 {
		return fmt.Errorf("signal: noise amplitude must be >= 0: %g", m.Noise)
	}
	return nil
}

// BinFrequency returns the frequency of transform bin k at the generator's
// sample rate, handy for placing tones exactly on a bin.
func (g *Generator) BinFrequency(k int) float64 {
	return g.cfg.SampleRate * float64(k) / fft.Size
}

// Quantize converts a full-scale-relative value to an ADC code with rounding
// and saturation.
func Quantize(v, fullScale float64) int16 {
	return int16(core.Clamp(math.Round(v*fullScale), math.MinInt16, math.MaxInt16))
}
