package core

import "testing"

func TestApplyGridOptions(t *testing.T) {
	cfg := ApplyGridOptions(WithDuration(0.02), WithSampleRate(250e3))
	if cfg.Duration != 0.02 {
		t.Fatalf("duration = %v, want 0.02", cfg.Duration)
	}
	if cfg.Interval != 1/250e3 {
		t.Fatalf("interval = %v, want %v", cfg.Interval, 1/250e3)
	}
	if !NearlyEqual(cfg.SampleRate(), 250e3, 1e-12) {
		t.Fatalf("sample rate = %v, want 250000", cfg.SampleRate())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyGridOptions(WithDuration(0), WithInterval(-1), WithSampleRate(0))
	def := DefaultGridConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
