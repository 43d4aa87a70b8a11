package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/fftpeak/dsp/fft"
	"github.com/cwbudde/fftpeak/dsp/signal"
	"github.com/cwbudde/fftpeak/dsp/spectrum"
)

// Report compares a run against independent implementations.
type Report struct {
	// MaxBinError is max_k |X[k] - Y[k]| against the algo-fft transform.
	MaxBinError float64
	// PrimaryGoertzel and SecondaryGoertzel are the peak magnitudes evaluated
	// by single-bin DFTs of the input.
	PrimaryGoertzel   float64
	SecondaryGoertzel float64
}

// PeakError returns the larger absolute deviation between the reported peak
// magnitudes and their single-bin evaluations.
func (rep Report) PeakError(res Result) float64 {
	return max(
		math.Abs(res.Peaks.Primary.Magnitude-rep.PrimaryGoertzel),
		math.Abs(res.Peaks.Secondary.Magnitude-rep.SecondaryGoertzel),
	)
}

// Verifier cross-checks runs against algo-fft. It owns its own buffers and
// never touches the Run's state.
type Verifier struct {
	plan  *algofft.Plan[complex64]
	input fft.Block
	ref   []complex64
}

// NewVerifier plans the reference transform.
func NewVerifier() (*Verifier, error) {
	plan, err := algofft.NewPlan32(fft.Size)
	if err != nil {
		return nil, fmt.Errorf("analysis: reference plan: %w", err)
	}
	return &Verifier{
		plan: plan,
		ref:  make([]complex64, fft.Size),
	}, nil
}

// Verify recomputes the spectrum of raw with the reference transform and
// compares it with the spectrum and peaks r produced for the same input.
func (v *Verifier) Verify(r *Run, raw *signal.RawBlock, res Result) (Report, error) {
	signal.IngestScaled(&v.input, raw, r.cfg.FullScale)

	if err := v.plan.Forward(v.ref, v.input[:]); err != nil {
		return Report{}, fmt.Errorf("analysis: reference transform: %w", err)
	}

	var rep Report
	for k, x := range r.Spectrum() {
		d := cmplx.Abs(complex128(x) - complex128(v.ref[k]))
		rep.MaxBinError = max(rep.MaxBinError, d)
	}

	var err error
	if rep.PrimaryGoertzel, err = v.peakMagnitude(res.Peaks.Primary); err != nil {
		return Report{}, err
	}
	if rep.SecondaryGoertzel, err = v.peakMagnitude(res.Peaks.Secondary); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// peakMagnitude evaluates p's bin independently. An empty peak (bin 0, the
// degenerate result of FindPeaks) evaluates to zero.
func (v *Verifier) peakMagnitude(p spectrum.Peak) (float64, error) {
	if p.Bin == 0 {
		return 0, nil
	}
	return spectrum.BinMagnitude(&v.input, p.Bin)
}
