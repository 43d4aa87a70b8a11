package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/fftpeak/dsp/fft"
	"github.com/cwbudde/fftpeak/internal/testutil"
)

func TestGoertzelMatchesFFT(t *testing.T) {
	in := testutil.MixBlock(8000, 0.2,
		testutil.Tone{FreqHz: 625, Amplitude: 0.5},
		testutil.Tone{FreqHz: 1800, Amplitude: 0.25},
	)

	spec := *in
	var a Analyzer
	var m Magnitudes
	fft.Forward(&spec, fft.DefaultTwiddle())
	a.Magnitude(&m, &spec)

	for _, bin := range []int{0, 1, 10, 29, 63} {
		got, err := BinMagnitude(in, bin)
		if err != nil {
			t.Fatalf("BinMagnitude(%d): %v", bin, err)
		}
		if math.Abs(got-m[bin]) > 1e-3 {
			t.Errorf("bin %d: goertzel %v, fft %v", bin, got, m[bin])
		}
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(16)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}

	g.ProcessBlock(testutil.SineBlock(1000, 8000, 1))
	if g.Power() == 0 {
		t.Fatal("Power should be non-zero after processing")
	}

	g.Reset()
	if g.Power() != 0 || g.Magnitude() != 0 {
		t.Fatal("Power should be zero after reset")
	}
	if g.Bin() != 16 {
		t.Fatalf("Bin() = %d, want 16", g.Bin())
	}
}

func TestGoertzelDC(t *testing.T) {
	got, err := BinMagnitude(testutil.MixBlock(8000, 1), 0)
	if err != nil {
		t.Fatalf("BinMagnitude: %v", err)
	}
	if math.Abs(got-fft.Size) > 1e-9 {
		t.Fatalf("DC magnitude = %v, want %d", got, fft.Size)
	}
}

func TestGoertzelRejectsBin(t *testing.T) {
	for _, bin := range []int{-1, fft.Size} {
		if _, err := NewGoertzel(bin); err == nil {
			t.Fatalf("NewGoertzel(%d) should fail", bin)
		}
	}
}
