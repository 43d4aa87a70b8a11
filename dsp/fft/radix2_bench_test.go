package fft

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
)

func BenchmarkForward(b *testing.B) {
	tw := NewTwiddle()
	src := randomBlock(1)

	var blk Block
	b.SetBytes(Size * 8) // complex64 = 8 bytes
	b.ResetTimer()

	for range b.N {
		blk = *src
		Forward(&blk, tw)
	}
}

func BenchmarkInverse(b *testing.B) {
	tw := NewTwiddle()
	src := randomBlock(2)

	var blk Block
	b.SetBytes(Size * 8)
	b.ResetTimer()

	for range b.N {
		blk = *src
		Inverse(&blk, tw)
	}
}

func BenchmarkTwiddleCompute(b *testing.B) {
	var tw Twiddle
	for range b.N {
		tw.Compute()
	}
}

func BenchmarkAlgoFFTPlan32(b *testing.B) {
	plan, err := algofft.NewPlan32(Size)
	if err != nil {
		b.Fatalf("NewPlan32: %v", err)
	}

	src := randomBlock(1)
	dst := make([]complex64, Size)
	b.SetBytes(Size * 8)
	b.ResetTimer()

	for range b.N {
		_ = plan.Forward(dst, src[:])
	}
}
