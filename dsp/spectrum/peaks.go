package spectrum

import (
	"github.com/cwbudde/fftpeak/dsp/core"
	"github.com/cwbudde/fftpeak/dsp/fft"
)

// Peak is one spectral component.
type Peak struct {
	Bin         int
	Magnitude   float64
	FrequencyHz float64
}

// LevelDB returns the peak level in dB relative to a full-scale sine, whose
// bin magnitude is fft.Size/2. An empty peak returns -Inf.
func (p Peak) LevelDB() float64 {
	return core.LinearToDB(2 * p.Magnitude / fft.Size)
}

// Peaks holds the two strongest components below Nyquist, excluding DC.
//
// Primary.Magnitude >= Secondary.Magnitude >= every other bin in
// [1, fft.Size/2). When fewer than two bins are non-zero the missing peak
// reports bin 0 with magnitude 0.
type Peaks struct {
	Primary   Peak
	Secondary Peak
}

// FindPeaks scans bins [1, fft.Size/2) keeping a running primary and
// secondary maximum. A value strictly greater than the primary demotes the
// primary to secondary; a value strictly greater than only the secondary
// replaces it. Ties keep the first bin seen.
//
// Frequencies are left at zero; see [Peaks.WithFrequencies].
func FindPeaks(m *Magnitudes) Peaks {
	var p Peaks
	for k := 1; k < fft.Size/2; k++ {
		v := m[k]
		switch {
		case v > p.Primary.Magnitude:
			p.Secondary = p.Primary
			p.Primary = Peak{Bin: k, Magnitude: v}
		case v > p.Secondary.Magnitude:
			p.Secondary = Peak{Bin: k, Magnitude: v}
		}
	}
	return p
}

// WithFrequencies returns p with both frequencies filled in for sampleRate.
func (p Peaks) WithFrequencies(sampleRate float64) Peaks {
	p.Primary.FrequencyHz = BinFrequency(p.Primary.Bin, sampleRate)
	p.Secondary.FrequencyHz = BinFrequency(p.Secondary.Bin, sampleRate)
	return p
}
