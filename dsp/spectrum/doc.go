// Package spectrum turns a transformed block into a magnitude spectrum and
// extracts its dominant components.
//
// The package does not compute the FFT itself; it operates on the natural
// order output of [fft.Forward]. Only bins [1, fft.Size/2) are searched for
// peaks: bin 0 is DC and the upper half mirrors the lower half for real input.
package spectrum
