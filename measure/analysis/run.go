package analysis

import (
	"github.com/cwbudde/fftpeak/dsp/core"
	"github.com/cwbudde/fftpeak/dsp/fft"
	"github.com/cwbudde/fftpeak/dsp/signal"
	"github.com/cwbudde/fftpeak/dsp/spectrum"
	"github.com/cwbudde/fftpeak/measure/timing"
)

// Result is the outcome of one analysis run.
type Result struct {
	Peaks      spectrum.Peaks
	Timing     timing.Measurement
	SampleRate float64
}

// ElapsedMicros returns the FFT execution time in microseconds.
func (r Result) ElapsedMicros() float64 {
	return r.Timing.Micros()
}

// Run owns the buffers of one analysis pipeline.
type Run struct {
	cfg   core.AnalysisConfig
	watch *timing.Stopwatch

	block    fft.Block
	twiddle  fft.Twiddle
	mags     spectrum.Magnitudes
	analyzer spectrum.Analyzer
}

// New creates a pipeline timed by counter. A nil counter uses the host
// monotonic clock.
func New(counter timing.Counter, opts ...core.AnalysisOption) *Run {
	if counter == nil {
		counter = timing.NewMonotonic()
	}
	return &Run{
		cfg:   core.ApplyAnalysisOptions(opts...),
		watch: timing.NewStopwatch(counter),
	}
}

// Config returns the analysis configuration.
func (r *Run) Config() core.AnalysisConfig {
	return r.cfg
}

// Analyze ingests raw, transforms it in place and extracts the two dominant
// components. Ingestion, table setup and peak extraction are outside the
// timed interval.
func (r *Run) Analyze(raw *signal.RawBlock) Result {
	signal.IngestScaled(&r.block, raw, r.cfg.FullScale)
	r.twiddle = *fft.DefaultTwiddle()

	r.watch.Start()
	fft.Forward(&r.block, &r.twiddle)
	elapsed := r.watch.Stop()

	r.analyzer.Magnitude(&r.mags, &r.block)
	peaks := spectrum.FindPeaks(&r.mags).WithFrequencies(r.cfg.SampleRate)

	return Result{
		Peaks:      peaks,
		Timing:     elapsed,
		SampleRate: r.cfg.SampleRate,
	}
}

// Spectrum returns the transformed block of the last run. It is overwritten
// by the next call to Analyze.
func (r *Run) Spectrum() *fft.Block {
	return &r.block
}

// Magnitudes returns the magnitude spectrum of the last run. It is
// overwritten by the next call to Analyze.
func (r *Run) Magnitudes() *spectrum.Magnitudes {
	return &r.mags
}
