package scenario

import (
	"context"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/channel/coverage"
	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/internal/config"
)

type coverageParams struct {
	Environment          string           `yaml:"environment"`
	Towers               []coverage.Tower `yaml:"towers"`
	ReferenceKm          float64          `yaml:"reference_km"`
	MobileHeightM        float64          `yaml:"h_ms"`
	SensitivityDBm       float64          `yaml:"sensitivity_dbm"`
	InterferenceDistance float64          `yaml:"interference_distance"`
}

func defaultTowers() []coverage.Tower {
	return []coverage.Tower{
		{ID: "north", Position: [2]float64{48.8600, 2.3550}, BaseHeightM: 30, TxPowerDBm: 43, FrequencyMHz: 900},
		{ID: "center", Position: [2]float64{48.8566, 2.3522}, BaseHeightM: 30, TxPowerDBm: 43, FrequencyMHz: 900},
		{ID: "east", Position: [2]float64{48.8700, 2.4100}, BaseHeightM: 40, TxPowerDBm: 20, FrequencyMHz: 1800},
	}
}

// runCoverage evaluates a tower layout. X is the tower index in layout order
// and Y its received power.
func runCoverage(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	opts := coverage.DefaultOptions()
	p := coverageParams{
		Environment:          "urban",
		Towers:               defaultTowers(),
		ReferenceKm:          opts.ReferenceKm,
		MobileHeightM:        opts.MobileHeightM,
		SensitivityDBm:       opts.SensitivityDBm,
		InterferenceDistance: opts.InterferenceDistance,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	env, err := pathloss.ParseEnvironment(p.Environment)
	if err != nil {
		return Result{}, err
	}
	opts.ReferenceKm = p.ReferenceKm
	opts.MobileHeightM = p.MobileHeightM
	opts.SensitivityDBm = p.SensitivityDBm
	opts.InterferenceDistance = p.InterferenceDistance

	report, err := coverage.EvaluateTowers(p.Towers, env, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		XLabel: "tower",
		YLabel: "received power (dBm)",
		X:      make([]float64, len(report.Coverage)),
		Y:      make([]float64, len(report.Coverage)),
		Extra:  report,
	}
	for i, c := range report.Coverage {
		res.X[i] = float64(i)
		res.Y[i] = c.ReceivedPowerDBm
	}
	return res, nil
}

type radiusParams struct {
	Model       string  `yaml:"model"`
	DMinKm      float64 `yaml:"d_min_km"`
	DMaxKm      float64 `yaml:"d_max_km"`
	Points      int     `yaml:"points"`
	ThresholdDB float64 `yaml:"threshold_db"`
}

// runCoverageRadius sweeps the default configuration of a registered model
// and reports the largest distance within the loss threshold.
func runCoverageRadius(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := radiusParams{
		Model:       "cost231",
		DMinKm:      0.1,
		DMaxKm:      20,
		Points:      200,
		ThresholdDB: 160,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m, err := pathloss.ParseModel(p.Model)
	if err != nil {
		return Result{}, err
	}
	sweep, err := coverage.Sweep(m, p.DMinKm, p.DMaxKm, p.Points, p.ThresholdDB)
	if err != nil {
		return Result{}, err
	}

	return Result{
		XLabel: labelDistanceKm,
		YLabel: labelLoss,
		X:      sweep.Distances,
		Y:      sweep.Losses,
		Extra: map[string]any{
			"model":     m.Name(),
			"radius_km": sweep.Radius,
		},
	}, nil
}
