package fft

import "math/bits"

// bitReverse maps each index to its Stages-bit reversal.
var bitReverse = func() (t [Size]uint8) {
	for i := range t {
		t[i] = bits.Reverse8(uint8(i)) >> (8 - Stages)
	}
	return t
}()

// Forward replaces b with its discrete Fourier transform
//
//	X[k] = sum_n x[n] * e^(-2*pi*i*k*n/Size)
//
// using an iterative radix-2 decimation-in-time algorithm. The input is
// permuted into bit-reversed order first, so the result is in natural order.
// tw must hold the table produced by [Twiddle.Compute].
func Forward(b *Block, tw *Twiddle) {
	permute(b)

	// First stage: span 2, every twiddle is 1.
	for i := 0; i < Size; i += 2 {
		u, v := b[i], b[i+1]
		b[i] = u + v
		b[i+1] = u - v
	}

	for half := 2; half < Size; half <<= 1 {
		stride := Size / (2 * half)
		for start := 0; start < Size; start += 2 * half {
			lo := b[start : start+half : start+half]
			hi := b[start+half : start+2*half : start+2*half]
			for j := range lo {
				v := tw[j*stride] * hi[j]
				u := lo[j]
				lo[j] = u + v
				hi[j] = u - v
			}
		}
	}
}

// Inverse replaces b with its inverse transform, scaled by 1/Size so that
// Inverse(Forward(x)) == x up to rounding.
func Inverse(b *Block, tw *Twiddle) {
	for i, c := range b {
		b[i] = complex(real(c), -imag(c))
	}

	Forward(b, tw)

	const scale = 1.0 / Size
	for i, c := range b {
		b[i] = complex(real(c)*scale, -imag(c)*scale)
	}
}

func permute(b *Block) {
	for i, j := range bitReverse {
		if i < int(j) {
			b[i], b[j] = b[j], b[i]
		}
	}
}
