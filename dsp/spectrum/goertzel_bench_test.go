package spectrum

import (
	"testing"

	"github.com/cwbudde/fftpeak/internal/testutil"
)

func BenchmarkGoertzel_ProcessBlock(b *testing.B) {
	g, _ := NewGoertzel(16)
	blk := testutil.SineBlock(1000, 8000, 1)

	b.ResetTimer()
	for range b.N {
		g.Reset()
		g.ProcessBlock(blk)
	}
}
