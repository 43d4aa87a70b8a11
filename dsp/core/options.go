package core

// Default analysis settings of the reference acquisition setup.
const (
	DefaultSampleRate = 8000.0
	DefaultFullScale  = 32768.0
)

// AnalysisConfig holds the external constants the spectral analysis depends on.
type AnalysisConfig struct {
	// SampleRate is the acquisition rate in Hz used to map bins to frequencies.
	SampleRate float64
	// FullScale is the ADC code that maps to amplitude 1.0 on ingestion.
	FullScale float64
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultAnalysisConfig returns the reference configuration: 8 kHz, signed 16-bit full scale.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleRate: DefaultSampleRate,
		FullScale:  DefaultFullScale,
	}
}

// WithSampleRate sets the acquisition sample rate.
func WithSampleRate(sampleRate float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFullScale sets the ADC full-scale code.
func WithFullScale(fullScale float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if fullScale > 0 {
			cfg.FullScale = fullScale
		}
	}
}

// ApplyAnalysisOptions applies zero or more options to the default config.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
