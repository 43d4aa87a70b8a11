package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/fftpeak/dsp/fft"
)

// Magnitudes holds |X[k]| for every bin of a transformed block. Only the
// first fft.Size/2 entries carry independent information for real input.
type Magnitudes [fft.Size]float64

// Half returns the bins below Nyquist.
func (m *Magnitudes) Half() []float64 {
	return m[:fft.Size/2]
}

// Analyzer owns the scratch buffers used to split a block into real and
// imaginary parts. The zero value is ready to use; it is not safe for
// concurrent use.
type Analyzer struct {
	re [fft.Size]float64
	im [fft.Size]float64
}

// Magnitude computes dst[k] = sqrt(re[k]^2 + im[k]^2) for every bin of b.
//
// The square root is taken per bin (not squared magnitude) so the values are
// directly comparable to amplitudes. SIMD kernels from algo-vecmath are used
// where available.
func (a *Analyzer) Magnitude(dst *Magnitudes, b *fft.Block) {
	for i, c := range b {
		a.re[i] = float64(real(c))
		a.im[i] = float64(imag(c))
	}

	vecmath.Magnitude(dst[:], a.re[:], a.im[:])
}

// BinFrequency maps bin k to Hz: sampleRate * k / fft.Size.
func BinFrequency(k int, sampleRate float64) float64 {
	return sampleRate * float64(k) / fft.Size
}

// Resolution returns the bin spacing in Hz.
func Resolution(sampleRate float64) float64 {
	return sampleRate / fft.Size
}
