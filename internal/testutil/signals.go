package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/fftpeak/dsp/fft"
)

// Tone is one sinusoid of a synthetic test block.
type Tone struct {
	FreqHz    float64
	Amplitude float64
}

// SineBlock returns amplitude*sin(2*pi*freqHz*n/sampleRate) as a real block.
func SineBlock(freqHz, sampleRate, amplitude float64) *fft.Block {
	return MixBlock(sampleRate, 0, Tone{FreqHz: freqHz, Amplitude: amplitude})
}

// MixBlock returns dc plus the sum of tones as a real block.
func MixBlock(sampleRate, dc float64, tones ...Tone) *fft.Block {
	b := new(fft.Block)
	for n := range b {
		v := dc
		for _, tone := range tones {
			v += tone.Amplitude * math.Sin(2*math.Pi*tone.FreqHz*float64(n)/sampleRate)
		}
		b[n] = complex(float32(v), 0)
	}
	return b
}

// NoiseBlock returns deterministic complex white noise in [-amplitude, amplitude].
func NoiseBlock(seed int64, amplitude float64) *fft.Block {
	rng := rand.New(rand.NewSource(seed))
	b := new(fft.Block)
	for i := range b {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		b[i] = complex(float32(re), float32(im))
	}
	return b
}

// ImpulseBlock returns a unit impulse at pos.
func ImpulseBlock(pos int) *fft.Block {
	b := new(fft.Block)
	if pos >= 0 && pos < fft.Size {
		b[pos] = 1
	}
	return b
}
