package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/fftpeak/dsp/fft"
)

// RequireNonNegative fails t if any element is negative, NaN or Inf.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			t.Fatalf("index %d: got %v, want finite value >= 0", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// RelativeError returns ||got - want|| / ||want|| over two blocks, or the
// absolute error norm when want is all zeros.
func RelativeError(got, want *fft.Block) float64 {
	var errSq, refSq float64
	for i := range got {
		d := cmplx.Abs(complex128(got[i]) - complex128(want[i]))
		r := cmplx.Abs(complex128(want[i]))
		errSq += d * d
		refSq += r * r
	}
	if refSq == 0 {
		return math.Sqrt(errSq)
	}
	return math.Sqrt(errSq / refSq)
}
