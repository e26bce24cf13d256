package core

// GridConfig describes the centered sampling grid shared by the signal
// scenarios: a window of Duration seconds sampled every Interval seconds.
type GridConfig struct {
	Duration float64
	Interval float64
}

// GridOption mutates a GridConfig.
type GridOption func(*GridConfig)

// DefaultGridConfig returns a one second window sampled at 1 kHz.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Duration: 1,
		Interval: 0.001,
	}
}

// WithDuration sets the window length in seconds.
func WithDuration(duration float64) GridOption {
	return func(cfg *GridConfig) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// WithInterval sets the sampling interval in seconds.
func WithInterval(te float64) GridOption {
	return func(cfg *GridConfig) {
		if te > 0 {
			cfg.Interval = te
		}
	}
}

// WithSampleRate sets the sampling interval from a rate in Hz.
func WithSampleRate(sampleRate float64) GridOption {
	return func(cfg *GridConfig) {
		if sampleRate > 0 {
			cfg.Interval = 1 / sampleRate
		}
	}
}

// SampleRate returns 1/Interval.
func (c GridConfig) SampleRate() float64 {
	return 1 / c.Interval
}

// ApplyGridOptions applies zero or more options to the default config.
func ApplyGridOptions(opts ...GridOption) GridConfig {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
