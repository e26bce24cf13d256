package coverage

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Tower is a base station in a layout.
type Tower struct {
	ID string `json:"id" yaml:"id"`
	// Position is [latitude, longitude] in degrees.
	Position     [2]float64 `json:"position" yaml:"position"`
	BaseHeightM  float64    `json:"h_bs" yaml:"h_bs"`
	TxPowerDBm   float64    `json:"tx_power" yaml:"tx_power"`
	FrequencyMHz float64    `json:"frequency" yaml:"frequency"`
}

// TowerCoverage is the evaluation of one tower.
type TowerCoverage struct {
	TowerID          string  `json:"tower_id"`
	LossDB           float64 `json:"loss_db"`
	ReceivedPowerDBm float64 `json:"received_power_dbm"`
	RadiusM          float64 `json:"coverage_radius_m"`
}

// Interference flags two towers placed closer than the interference distance.
type Interference struct {
	Tower1   string  `json:"tower1"`
	Tower2   string  `json:"tower2"`
	Distance float64 `json:"distance"`
}

// Report is the result of [EvaluateTowers].
type Report struct {
	Coverage     []TowerCoverage `json:"coverage"`
	Interference []Interference  `json:"interference"`
}

// Options tunes [EvaluateTowers].
type Options struct {
	// ReferenceKm is the distance at which loss is evaluated.
	ReferenceKm float64
	// MobileHeightM is the receiver height.
	MobileHeightM float64
	// SensitivityDBm splits towers into the strong and weak radius class.
	SensitivityDBm float64
	// StrongRadiusM is used when received power exceeds SensitivityDBm.
	StrongRadiusM float64
	// WeakRadiusM is used otherwise.
	WeakRadiusM float64
	// InterferenceDistance is the coordinate distance, in degrees, below
	// which two towers interfere.
	InterferenceDistance float64
}

// DefaultOptions returns a 1 km reference, 1.5 m mobile, -100 dBm split into
// 1000 m and 500 m radii, and a 0.005 degree interference distance.
func DefaultOptions() Options {
	return Options{
		ReferenceKm:          1,
		MobileHeightM:        1.5,
		SensitivityDBm:       -100,
		StrongRadiusM:        1000,
		WeakRadiusM:          500,
		InterferenceDistance: 0.005,
	}
}

// EvaluateTowers computes COST231 loss and received power for every tower at
// the reference distance, assigns a nominal radius and reports every pair of
// towers closer than the interference distance.
func EvaluateTowers(towers []Tower, env pathloss.Environment, opts Options) (Report, error) {
	report := Report{
		Coverage:     make([]TowerCoverage, 0, len(towers)),
		Interference: []Interference{},
	}

	for _, tw := range towers {
		m := pathloss.Cost231{
			FrequencyMHz:  tw.FrequencyMHz,
			BaseHeightM:   tw.BaseHeightM,
			MobileHeightM: opts.MobileHeightM,
			Environment:   env,
		}
		l, err := m.Loss(opts.ReferenceKm)
		if err != nil {
			return Report{}, fmt.Errorf("coverage tower %s: %w", tw.ID, err)
		}
		if !core.IsFinite(tw.TxPowerDBm) {
			return Report{}, fmt.Errorf("%w: coverage tower %s tx power must be finite", core.ErrInvalidParameter, tw.ID)
		}

		rx := pathloss.ReceivedPowerDBm(tw.TxPowerDBm, l)
		r := opts.WeakRadiusM
		if rx > opts.SensitivityDBm {
			r = opts.StrongRadiusM
		}
		report.Coverage = append(report.Coverage, TowerCoverage{
			TowerID:          tw.ID,
			LossDB:           l,
			ReceivedPowerDBm: rx,
			RadiusM:          r,
		})
	}

	for i := range towers {
		for j := i + 1; j < len(towers); j++ {
			a, b := towers[i].Position, towers[j].Position
			d := math.Hypot(a[0]-b[0], a[1]-b[1])
			if d < opts.InterferenceDistance {
				report.Interference = append(report.Interference, Interference{
					Tower1:   towers[i].ID,
					Tower2:   towers[j].ID,
					Distance: d,
				})
			}
		}
	}
	return report, nil
}
