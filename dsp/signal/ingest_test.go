package signal

import (
	"errors"
	"testing"

	"github.com/cwbudde/fftpeak/dsp/fft"
)

func TestIngestNormalizesAndZerosImag(t *testing.T) {
	var raw RawBlock
	raw[0] = -32768
	raw[1] = 16384
	raw[2] = 32767
	raw[3] = -1

	var b fft.Block
	for i := range b {
		b[i] = complex(5, 5) // stale contents must be overwritten
	}
	Ingest(&b, &raw)

	want := map[int]float32{0: -1, 1: 0.5, 2: 32767.0 / 32768.0, 3: -1.0 / 32768.0, 4: 0}
	for i, w := range want {
		if real(b[i]) != w {
			t.Fatalf("real(b[%d]) = %v, want %v", i, real(b[i]), w)
		}
	}
	for i, c := range b {
		if imag(c) != 0 {
			t.Fatalf("imag(b[%d]) = %v, want 0", i, imag(c))
		}
		if r := real(c); r < -1 || r >= 1 {
			t.Fatalf("real(b[%d]) = %v out of [-1, 1)", i, r)
		}
	}
}

func TestIngestScaled(t *testing.T) {
	var raw RawBlock
	raw[0] = 1024
	raw[1] = -2048

	var b fft.Block
	IngestScaled(&b, &raw, 2048)

	if real(b[0]) != 0.5 || real(b[1]) != -1 {
		t.Fatalf("got %v %v, want 0.5 -1", b[0], b[1])
	}
}

func TestRawBlockFromSlice(t *testing.T) {
	samples := make([]int16, fft.Size)
	samples[5] = 123

	raw, err := RawBlockFromSlice(samples)
	if err != nil {
		t.Fatalf("RawBlockFromSlice() error = %v", err)
	}
	if raw[5] != 123 {
		t.Fatalf("raw[5] = %d, want 123", raw[5])
	}

	samples[5] = 0
	if raw[5] != 123 {
		t.Fatal("RawBlockFromSlice must copy its input")
	}
}

func TestRawBlockFromSliceLengthMismatch(t *testing.T) {
	for _, n := range []int{0, fft.Size - 1, fft.Size + 1} {
		_, err := RawBlockFromSlice(make([]int16, n))
		if !errors.Is(err, ErrBlockLength) {
			t.Fatalf("len %d: err = %v, want ErrBlockLength", n, err)
		}
	}
}
