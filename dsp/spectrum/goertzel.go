package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/fftpeak/dsp/fft"
)

// Goertzel evaluates a single DFT bin of the real part of a block.
//
// It is independent of the FFT and its twiddle table, which makes it useful
// to cross-check individual peaks reported by [FindPeaks]. After one full
// block, Power equals |X[bin]|^2 of the same block.
type Goertzel struct {
	bin    int
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an evaluator for bin in [0, fft.Size).
func NewGoertzel(bin int) (*Goertzel, error) {
	if bin < 0 || bin >= fft.Size {
		return nil, fmt.Errorf("goertzel: bin must be in [0, %d): %d", fft.Size, bin)
	}

	return &Goertzel{
		bin:   bin,
		coeff: 2 * math.Cos(2*math.Pi*float64(bin)/fft.Size),
	}, nil
}

// Bin returns the evaluated bin index.
func (g *Goertzel) Bin() int { return g.bin }

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock feeds the real parts of b through the recurrence.
func (g *Goertzel) ProcessBlock(b *fft.Block) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, c := range b {
		s := float64(real(c)) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the bin.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the bin.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// BinMagnitude computes |X[bin]| of the real part of b in one shot.
func BinMagnitude(b *fft.Block, bin int) (float64, error) {
	g, err := NewGoertzel(bin)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(b)

	return g.Magnitude(), nil
}
