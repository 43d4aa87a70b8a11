package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/fftpeak/dsp/core"
	"github.com/cwbudde/fftpeak/dsp/fft"
)

// RawBlock is one acquisition block of signed 16-bit ADC codes.
type RawBlock [fft.Size]int16

// ErrBlockLength is returned when a slice does not hold exactly fft.Size samples.
var ErrBlockLength = errors.New("signal: block length must equal transform size")

// Ingest normalizes src by the signed 16-bit full scale (32768) into dst.
// Imaginary parts are zeroed.
func Ingest(dst *fft.Block, src *RawBlock) {
	IngestScaled(dst, src, core.DefaultFullScale)
}

// IngestScaled writes real = src[i]/fullScale, imag = 0 for every sample.
func IngestScaled(dst *fft.Block, src *RawBlock, fullScale float64) {
	inv := float32(1 / fullScale)
	for i, v := range src {
		dst[i] = complex(float32(v)*inv, 0)
	}
}

// RawBlockFromSlice copies samples into a RawBlock. It is the only place a
// length mismatch can occur, so it is checked here rather than in the core.
func RawBlockFromSlice(samples []int16) (*RawBlock, error) {
	if len(samples) != fft.Size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBlockLength, len(samples), fft.Size)
	}
	raw := new(RawBlock)
	copy(raw[:], samples)
	return raw, nil
}
