package fft

import (
	"math"
	"sync"
)

const (
	// Size is the transform length. It must be a power of two.
	Size = 128

	// Stages is log2(Size), the number of butterfly stages.
	Stages = 7
)

// Size must equal 1<<Stages; the indexing below fails to compile otherwise.
var _ = [1]struct{}{}[Size-1<<Stages]

// Block is a sample block of Size complex samples. The transform overwrites
// it in place.
type Block [Size]complex64

// Twiddle holds the roots of unity e^(-2*pi*i*k/Size) for k = 0..Size-1.
type Twiddle [Size]complex64

// NewTwiddle returns a freshly computed twiddle table.
func NewTwiddle() *Twiddle {
	tw := new(Twiddle)
	tw.Compute()
	return tw
}

// Compute fills the table. Each entry is evaluated directly from its index in
// float64 and rounded once, so the phase error does not accumulate with k.
func (tw *Twiddle) Compute() {
	for k := range tw {
		phase := 2 * math.Pi * float64(k) / Size
		tw[k] = complex(float32(math.Cos(phase)), float32(-math.Sin(phase)))
	}
}

var (
	sharedOnce    sync.Once
	sharedTwiddle Twiddle
)

// DefaultTwiddle returns a process-wide table computed on first use.
// The returned table is shared and must be treated as read-only.
func DefaultTwiddle() *Twiddle {
	sharedOnce.Do(sharedTwiddle.Compute)
	return &sharedTwiddle
}
