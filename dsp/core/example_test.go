package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

func ExampleApplyGridOptions() {
	cfg := core.ApplyGridOptions(
		core.WithDuration(0.01),
		core.WithSampleRate(250e3),
	)

	fmt.Printf("duration=%.2f rate=%.0f\n", cfg.Duration, cfg.SampleRate())

	// Output:
	// duration=0.01 rate=250000
}

func ExampleLog10Floor() {
	fmt.Printf("%.1f %.1f\n", core.Log10Floor(1000), core.Log10Floor(0))

	// Output:
	// 3.0 -12.0
}
