package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// naiveDFT evaluates the DFT definition in float64.
func naiveDFT(in *Block) []complex128 {
	out := make([]complex128, Size)
	for k := range out {
		var sum complex128
		for n, x := range in {
			angle := -2 * math.Pi * float64(k*n%Size) / Size
			sum += complex128(x) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func randomBlock(seed int64) *Block {
	rng := rand.New(rand.NewSource(seed))
	b := new(Block)
	for i := range b {
		b[i] = complex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))
	}
	return b
}

func realSine(bin int, amplitude float64) *Block {
	b := new(Block)
	for n := range b {
		b[n] = complex(float32(amplitude*math.Sin(2*math.Pi*float64(bin*n)/Size)), 0)
	}
	return b
}

func toComplex128(b *Block) []complex128 {
	out := make([]complex128, Size)
	for i, c := range b {
		out[i] = complex128(c)
	}
	return out
}

func requireBinsNear(t *testing.T, got *Block, want []complex128, tol float64) {
	t.Helper()
	for k := range got {
		if d := cmplx.Abs(complex128(got[k]) - want[k]); d > tol {
			t.Fatalf("bin %d: got %v, want %v (diff %v > %v)", k, got[k], want[k], d, tol)
		}
	}
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	tw := NewTwiddle()

	for seed := int64(1); seed <= 5; seed++ {
		in := randomBlock(seed)
		want := naiveDFT(in)

		got := *in
		Forward(&got, tw)
		requireBinsNear(t, &got, want, 1e-4)
	}
}

func TestForwardImpulse(t *testing.T) {
	tw := NewTwiddle()

	var b Block
	b[0] = 1
	Forward(&b, tw)

	for k, c := range b {
		if c != 1 {
			t.Fatalf("bin %d = %v, want 1", k, c)
		}
	}
}

func TestForwardShiftedImpulseIsNaturalOrder(t *testing.T) {
	// x[n] = delta[n-1] has X[k] = e^(-2*pi*i*k/N); bit-reversed output would
	// scramble the phase ramp.
	tw := NewTwiddle()

	var b Block
	b[1] = 1
	Forward(&b, tw)

	for k, c := range b {
		want := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/Size))
		if d := cmplx.Abs(complex128(c) - want); d > 1e-6 {
			t.Fatalf("bin %d = %v, want %v", k, c, want)
		}
	}
}

func TestForwardPureToneLandsInBin(t *testing.T) {
	tw := NewTwiddle()

	b := realSine(16, 1)
	Forward(b, tw)

	// A real sine of amplitude A at bin k0 yields |X[k0]| = |X[N-k0]| = A*N/2.
	for k, c := range b {
		mag := cmplx.Abs(complex128(c))
		switch k {
		case 16, Size - 16:
			if math.Abs(mag-Size/2) > 1e-3 {
				t.Fatalf("|X[%d]| = %v, want %v", k, mag, Size/2)
			}
		default:
			if mag > 1e-4 {
				t.Fatalf("|X[%d]| = %v, want ~0", k, mag)
			}
		}
	}
}

func TestForwardLinearity(t *testing.T) {
	tw := NewTwiddle()

	a := randomBlock(11)
	c := randomBlock(12)

	var sum Block
	for i := range sum {
		sum[i] = 2*a[i] - 0.5*c[i]
	}

	Forward(a, tw)
	Forward(c, tw)
	Forward(&sum, tw)

	for k := range sum {
		want := 2*complex128(a[k]) - 0.5*complex128(c[k])
		if d := cmplx.Abs(complex128(sum[k]) - want); d > 1e-4 {
			t.Fatalf("bin %d: got %v, want %v", k, sum[k], want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tw := NewTwiddle()

	for seed := int64(20); seed < 30; seed++ {
		in := randomBlock(seed)
		b := *in

		Forward(&b, tw)
		Inverse(&b, tw)

		var errSq, refSq float64
		for i := range b {
			d := cmplx.Abs(complex128(b[i]) - complex128(in[i]))
			r := cmplx.Abs(complex128(in[i]))
			errSq += d * d
			refSq += r * r
		}

		if rel := math.Sqrt(errSq / refSq); rel >= 1e-4 {
			t.Fatalf("seed %d: relative round-trip error %v >= 1e-4", seed, rel)
		}
	}
}

func TestForwardMatchesAlgoFFT(t *testing.T) {
	plan, err := algofft.NewPlan32(Size)
	if err != nil {
		t.Fatalf("NewPlan32: %v", err)
	}

	in := randomBlock(7)
	ref := make([]complex64, Size)
	if err := plan.Forward(ref, in[:]); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	want := make([]complex128, Size)
	for i, c := range ref {
		want[i] = complex128(c)
	}

	got := *in
	Forward(&got, NewTwiddle())
	requireBinsNear(t, &got, want, 1e-4)
}

func TestForwardMatchesGonum(t *testing.T) {
	in := randomBlock(8)
	want := fourier.NewCmplxFFT(Size).Coefficients(nil, toComplex128(in))

	got := *in
	Forward(&got, NewTwiddle())
	requireBinsNear(t, &got, want, 1e-4)
}

func TestInverseMatchesGoDSP(t *testing.T) {
	tw := NewTwiddle()

	spec := randomBlock(9)
	want := godsp.IFFT(toComplex128(spec))

	got := *spec
	Inverse(&got, tw)
	requireBinsNear(t, &got, want, 1e-5)
}

func TestForwardDoesNotAllocate(t *testing.T) {
	tw := NewTwiddle()
	b := randomBlock(3)

	allocs := testing.AllocsPerRun(100, func() {
		Forward(b, tw)
	})
	if allocs != 0 {
		t.Fatalf("Forward allocated %v times per run", allocs)
	}
}
