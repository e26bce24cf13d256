package scenario

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/channel/fading"
	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/signal"
	"github.com/cwbudde/algo-rfchannel/internal/config"
	"gonum.org/v1/gonum/floats"
)

const (
	labelDistanceM  = "distance (m)"
	labelDistanceKm = "distance (km)"
	labelLoss       = "loss (dB)"
)

// attenuated returns a sinusoid on the grid scaled by the amplitude factor
// of model at distanceKm when showLoss is set.
func attenuated(g Grid, amplitude, freq, phase float64, m pathloss.Model, distanceKm float64, showLoss bool) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	t, err := g.Axis()
	if err != nil {
		return Result{}, err
	}

	y := signal.Sinusoid(t, amplitude, freq, phase)
	if showLoss {
		loss, err := m.Loss(distanceKm)
		if err != nil {
			return Result{}, err
		}
		floats.Scale(pathloss.AmplitudeFactor(loss), y)
	}
	return g.series(t, y), nil
}

// movingCarrier is sin(2π·f·(t - d/c)) for a receiver moving linearly from
// dMinKm to dMaxKm over the window, optionally attenuated by the model loss
// at each distance, normalized to unit peak.
func movingCarrier(g Grid, m pathloss.Model, frequencyMHz, dMinKm, dMaxKm float64, showLoss bool) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	t, err := g.Axis()
	if err != nil {
		return Result{}, err
	}

	distances := signal.Linspace(dMinKm, dMaxKm, len(t))
	y, err := signal.DelayedCarrier(t, frequencyMHz*1e6, distances)
	if err != nil {
		return Result{}, err
	}
	if showLoss {
		losses, err := pathloss.Curve(m, distances)
		if err != nil {
			return Result{}, err
		}
		for i, l := range losses {
			y[i] *= pathloss.AmplitudeFactor(l)
		}
	}
	if len(y) > 0 {
		if y, err = signal.Normalize(y, 1); err != nil {
			return Result{}, err
		}
	}
	return g.series(t, y), nil
}

// lossCurve evaluates m over points distances spanning [lo, hi] km and
// reports them on an x axis scaled by xScale.
func lossCurve(m pathloss.Model, lo, hi float64, points int, xScale float64, xLabel string) (Result, error) {
	if points < 2 {
		return Result{}, fmt.Errorf("%w: scenario loss curve needs at least 2 points: %d", core.ErrInvalidParameter, points)
	}
	distances := signal.Linspace(lo, hi, points)
	losses, err := pathloss.Curve(m, distances)
	if err != nil {
		return Result{}, err
	}

	x := make([]float64, len(distances))
	copy(x, distances)
	floats.Scale(xScale, x)
	return Result{X: x, Y: losses, XLabel: xLabel, YLabel: labelLoss}, nil
}

type freeSpaceParams struct {
	Grid       `yaml:",inline"`
	CarrierGHz float64 `yaml:"carrier_ghz"`
	BasebandHz float64 `yaml:"baseband_hz"`
	DistanceKm float64 `yaml:"distance_km"`
	ShowLoss   bool    `yaml:"show_loss"`
}

func runFreeSpace(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := freeSpaceParams{
		Grid:       defaultGrid(),
		CarrierGHz: 2.4,
		BasebandHz: 10,
		DistanceKm: 0.001,
		ShowLoss:   true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m := pathloss.FreeSpace{FrequencyMHz: p.CarrierGHz * 1000}
	return attenuated(p.Grid, 1, p.BasebandHz, 0, m, p.DistanceKm, p.ShowLoss)
}

type cost231Params struct {
	Grid          `yaml:",inline"`
	FrequencyMHz  float64 `yaml:"f"`
	BaseHeightM   float64 `yaml:"h_bs"`
	MobileHeightM float64 `yaml:"h_ms"`
	DistanceKm    float64 `yaml:"d"`
	Environment   string  `yaml:"environment"`
	CarrierHz     float64 `yaml:"carrier_hz"`
	TxPowerDBm    float64 `yaml:"tx_power_dbm"`
	Fading        bool    `yaml:"fading"`
	ShowLoss      bool    `yaml:"show_loss"`
}

// runCost231 emits a cosine of the transmit power in watts, scaled by the
// linear power factor of the COST231 loss and optionally by a unit Rayleigh
// envelope.
func runCost231(_ context.Context, params config.Params, rng *rand.Rand) (Result, error) {
	p := cost231Params{
		Grid:          defaultGrid(),
		FrequencyMHz:  900,
		BaseHeightM:   30,
		MobileHeightM: 1.5,
		DistanceKm:    0.001,
		Environment:   "rural",
		CarrierHz:     20,
		TxPowerDBm:    50,
		ShowLoss:      true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	env, err := pathloss.ParseEnvironment(p.Environment)
	if err != nil {
		return Result{}, err
	}
	m := pathloss.Cost231{
		FrequencyMHz:  p.FrequencyMHz,
		BaseHeightM:   p.BaseHeightM,
		MobileHeightM: p.MobileHeightM,
		Environment:   env,
	}
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}

	y := signal.Sinusoid(t, core.DBmToWatts(p.TxPowerDBm), p.CarrierHz, math.Pi/2)
	if p.ShowLoss {
		loss, err := m.Loss(p.DistanceKm)
		if err != nil {
			return Result{}, err
		}
		floats.Scale(pathloss.PowerFactor(loss), y)
	}
	if p.Fading {
		envelope, err := fading.Rayleigh(1, len(y), rng)
		if err != nil {
			return Result{}, err
		}
		floats.Mul(y, envelope)
	}
	return p.series(t, y), nil
}

type nlosParams struct {
	Grid         `yaml:",inline"`
	FrequencyMHz float64 `yaml:"frequency_mhz"`
	DMinM        float64 `yaml:"d_min_m"`
	DMaxM        float64 `yaml:"d_max_m"`
	Environment  string  `yaml:"environment"`
	SignalHz     float64 `yaml:"f_signal"`
	P0DBm        float64 `yaml:"p0"`
	Amplitude    float64 `yaml:"amplitude"`
	ShowLoss     bool    `yaml:"show_loss"`
}

// runNLOS varies the transmit power sinusoidally in dB around P0 and applies
// the NLOS loss of a receiver moving from d_min to d_max.
func runNLOS(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := nlosParams{
		Grid:         defaultGrid(),
		FrequencyMHz: 2400,
		DMinM:        1,
		DMaxM:        1000,
		Environment:  "urban",
		SignalHz:     10,
		Amplitude:    1,
		ShowLoss:     true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	env, err := pathloss.ParseEnvironment(p.Environment)
	if err != nil {
		return Result{}, err
	}
	m := pathloss.NLOS{FrequencyMHz: p.FrequencyMHz, Environment: env}
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}

	txDB := signal.Sinusoid(t, p.Amplitude, p.SignalHz, 0)
	y := make([]float64, len(t))
	for i, v := range txDB {
		y[i] = core.DBPowerToLinear(p.P0DBm + v)
	}
	if p.ShowLoss {
		distances := signal.Linspace(p.DMinM/1000, p.DMaxM/1000, len(t))
		losses, err := pathloss.Curve(m, distances)
		if err != nil {
			return Result{}, err
		}
		for i, l := range losses {
			y[i] *= pathloss.AmplitudeFactor(l)
		}
	}
	return p.series(t, y), nil
}

type hataParams struct {
	Grid          `yaml:",inline"`
	FrequencyMHz  float64 `yaml:"f"`
	SignalHz      float64 `yaml:"signal_frequency"`
	BaseHeightM   float64 `yaml:"h_b"`
	MobileHeightM float64 `yaml:"h_m"`
	DistanceKm    float64 `yaml:"d"`
	Environment   string  `yaml:"environment"`
	CitySize      string  `yaml:"city_size"`
	Amplitude     float64 `yaml:"amplitude"`
	ShowLoss      bool    `yaml:"show_loss"`
}

func runHata(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := hataParams{
		Grid:          defaultGrid(),
		FrequencyMHz:  900,
		SignalHz:      10,
		BaseHeightM:   50,
		MobileHeightM: 1.5,
		DistanceKm:    1,
		Environment:   "urban",
		CitySize:      "medium-small",
		Amplitude:     1,
		ShowLoss:      true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	env, err := pathloss.ParseEnvironment(p.Environment)
	if err != nil {
		return Result{}, err
	}
	city, err := pathloss.ParseCitySize(p.CitySize)
	if err != nil {
		return Result{}, err
	}
	m := pathloss.OkumuraHata{
		FrequencyMHz:  p.FrequencyMHz,
		BaseHeightM:   p.BaseHeightM,
		MobileHeightM: p.MobileHeightM,
		Environment:   env,
		City:          city,
	}
	return attenuated(p.Grid, p.Amplitude, p.SignalHz, 0, m, p.DistanceKm, p.ShowLoss)
}

type twoRayParams struct {
	Grid         `yaml:",inline"`
	FrequencyMHz float64 `yaml:"frequency_mhz"`
	SignalHz     float64 `yaml:"signal_frequency"`
	TxHeightM    float64 `yaml:"ht"`
	RxHeightM    float64 `yaml:"hr"`
	DistanceM    float64 `yaml:"d"`
	ShowLoss     bool    `yaml:"show_loss"`
}

func runTwoRay(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := twoRayParams{
		Grid:         defaultGrid(),
		FrequencyMHz: 900,
		SignalHz:     10,
		TxHeightM:    30,
		RxHeightM:    1.5,
		DistanceM:    100,
		ShowLoss:     true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m := pathloss.TwoRay{FrequencyMHz: p.FrequencyMHz, TxHeightM: p.TxHeightM, RxHeightM: p.RxHeightM}
	return attenuated(p.Grid, 1, p.SignalHz, 0, m, p.DistanceM/1000, p.ShowLoss)
}

type twoRayLossParams struct {
	FrequencyMHz float64 `yaml:"frequency_mhz"`
	TxHeightM    float64 `yaml:"ht"`
	RxHeightM    float64 `yaml:"hr"`
	DMinM        float64 `yaml:"d_min_m"`
	DMaxM        float64 `yaml:"d_max_m"`
	Points       int     `yaml:"points"`
}

func runTwoRayLoss(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := twoRayLossParams{
		FrequencyMHz: 900,
		TxHeightM:    30,
		RxHeightM:    1.5,
		DMinM:        1,
		DMaxM:        1000,
		Points:       500,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m := pathloss.TwoRay{FrequencyMHz: p.FrequencyMHz, TxHeightM: p.TxHeightM, RxHeightM: p.RxHeightM}
	return lossCurve(m, p.DMinM/1000, p.DMaxM/1000, p.Points, 1000, labelDistanceM)
}

type weissbergerParams struct {
	Grid           `yaml:",inline"`
	FrequencyMHz   float64 `yaml:"frequency_mhz"`
	FoliageDepthKm float64 `yaml:"foliage_depth_km"`
	DMinKm         float64 `yaml:"d_min_km"`
	DMaxKm         float64 `yaml:"d_max_km"`
	ShowLoss       bool    `yaml:"show_loss"`
}

func runWeissberger(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := weissbergerParams{
		Grid:           defaultGrid(),
		FrequencyMHz:   900,
		FoliageDepthKm: 0.1,
		DMinKm:         1,
		DMaxKm:         1000,
		ShowLoss:       true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m := pathloss.Weissberger{FrequencyMHz: p.FrequencyMHz, FoliageDepthKm: p.FoliageDepthKm}
	return movingCarrier(p.Grid, m, p.FrequencyMHz, p.DMinKm, p.DMaxKm, p.ShowLoss)
}

type weissbergerLossParams struct {
	FrequencyMHz   float64 `yaml:"frequency_mhz"`
	FoliageDepthKm float64 `yaml:"foliage_depth_km"`
	DMinKm         float64 `yaml:"d_min_km"`
	DMaxKm         float64 `yaml:"d_max_km"`
	Points         int     `yaml:"points"`
}

func runWeissbergerLoss(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := weissbergerLossParams{
		FrequencyMHz:   900,
		FoliageDepthKm: 0.1,
		DMinKm:         1,
		DMaxKm:         400,
		Points:         400,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m := pathloss.Weissberger{FrequencyMHz: p.FrequencyMHz, FoliageDepthKm: p.FoliageDepthKm}
	return lossCurve(m, p.DMinKm, p.DMaxKm, p.Points, 1, labelDistanceKm)
}

type longleyRiceParams struct {
	FrequencyMHz         float64 `yaml:"frequency_mhz"`
	TxHeightM            float64 `yaml:"height_tx"`
	RxHeightM            float64 `yaml:"height_rx"`
	TerrainIrregularityM float64 `yaml:"terrain_irregularity"`
	Climate              string  `yaml:"climate"`
}

func defaultLongleyRice() longleyRiceParams {
	return longleyRiceParams{
		FrequencyMHz:         900,
		TxHeightM:            30,
		RxHeightM:            1.5,
		TerrainIrregularityM: 50,
		Climate:              "continental-temperate",
	}
}

func (p longleyRiceParams) model() (pathloss.LongleyRice, error) {
	climate, err := pathloss.ParseClimate(p.Climate)
	if err != nil {
		return pathloss.LongleyRice{}, err
	}
	return pathloss.LongleyRice{
		FrequencyMHz:         p.FrequencyMHz,
		TxHeightM:            p.TxHeightM,
		RxHeightM:            p.RxHeightM,
		TerrainIrregularityM: p.TerrainIrregularityM,
		Climate:              climate,
	}, nil
}

type longleyRiceSignalParams struct {
	Grid              `yaml:",inline"`
	longleyRiceParams `yaml:",inline"`
	DMinKm            float64 `yaml:"d_min_km"`
	DMaxKm            float64 `yaml:"d_max_km"`
	ShowLoss          bool    `yaml:"show_loss"`
}

func runLongleyRice(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := longleyRiceSignalParams{
		Grid:              defaultGrid(),
		longleyRiceParams: defaultLongleyRice(),
		DMinKm:            1,
		DMaxKm:            1000,
		ShowLoss:          true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m, err := p.model()
	if err != nil {
		return Result{}, err
	}
	return movingCarrier(p.Grid, m, p.FrequencyMHz, p.DMinKm, p.DMaxKm, p.ShowLoss)
}

type longleyRiceLossParams struct {
	longleyRiceParams `yaml:",inline"`
	DMinKm            float64 `yaml:"d_min_km"`
	DMaxKm            float64 `yaml:"d_max_km"`
	Points            int     `yaml:"points"`
}

func runLongleyRiceLoss(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := longleyRiceLossParams{
		longleyRiceParams: defaultLongleyRice(),
		DMinKm:            1,
		DMaxKm:            100,
		Points:            300,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	m, err := p.model()
	if err != nil {
		return Result{}, err
	}
	return lossCurve(m, p.DMinKm, p.DMaxKm, p.Points, 1, labelDistanceKm)
}
