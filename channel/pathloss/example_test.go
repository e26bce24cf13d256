package pathloss_test

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
)

func ExampleCurve() {
	m := pathloss.FreeSpace{FrequencyMHz: 900}
	losses, _ := pathloss.Curve(m, []float64{1, 10})
	fmt.Printf("%.1f %.1f\n", losses[0], losses[1])
	// Output: 91.5 111.5
}
