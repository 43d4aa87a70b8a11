// Package fft implements the fixed-size complex transform used by the
// spectral peak analyzer.
//
// The transform length is fixed at build time ([Size] = 128). All buffers are
// arrays, so length mismatches are impossible by construction and the hot path
// performs no allocation and no trigonometric evaluation:
//
//	tw := fft.NewTwiddle()   // once
//	var b fft.Block          // filled by the caller
//	fft.Forward(&b, tw)      // b now holds the spectrum in natural bin order
//
// [Inverse] exists for verification (round-trip tests); the analysis pipeline
// only uses [Forward].
package fft
