package coverage

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

func TestRadius(t *testing.T) {
	d := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		losses    []float64
		threshold float64
		want      float64
	}{
		{"none under", []float64{100, 110, 120, 130, 140}, 90, 0},
		{"all under", []float64{100, 110, 120, 130, 140}, 200, 5},
		{"monotonic", []float64{100, 110, 120, 130, 140}, 125, 3},
		{"equal counts", []float64{100, 110, 120, 130, 140}, 130, 4},
		{"non monotonic", []float64{100, 150, 110, 160, 120}, 125, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Radius(d, tt.losses, tt.threshold)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Radius = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Radius(d, []float64{1}, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if got, err := Radius(nil, nil, 0); err != nil || got != 0 {
		t.Fatalf("empty Radius = %v, %v", got, err)
	}
}

func TestSweep(t *testing.T) {
	m := pathloss.FreeSpace{FrequencyMHz: 900}
	res, err := Sweep(m, 1, 10, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Distances) != 10 || res.Distances[0] != 1 || res.Distances[9] != 10 {
		t.Fatalf("distances = %v", res.Distances)
	}
	if res.Radius != 0 {
		t.Fatalf("radius = %v, want 0", res.Radius)
	}

	// 1 km at 900 MHz is about 91.5 dB; 5 km is about 105.5 dB.
	res, err = Sweep(m, 1, 10, 10, 106)
	if err != nil {
		t.Fatal(err)
	}
	if res.Radius != 5 {
		t.Fatalf("radius = %v, want 5", res.Radius)
	}

	if _, err := Sweep(m, 1, 10, 1, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Sweep(m, 5, 1, 10, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v", err)
	}
}

func TestEvaluateTowers(t *testing.T) {
	towers := []Tower{
		{ID: "a", Position: [2]float64{36.80, 10.18}, BaseHeightM: 30, TxPowerDBm: 43, FrequencyMHz: 1800},
		{ID: "b", Position: [2]float64{36.803, 10.18}, BaseHeightM: 30, TxPowerDBm: 0, FrequencyMHz: 1800},
		{ID: "c", Position: [2]float64{36.90, 10.30}, BaseHeightM: 30, TxPowerDBm: 43, FrequencyMHz: 1800},
	}

	rep, err := EvaluateTowers(towers, pathloss.EnvironmentUrban, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Coverage) != 3 {
		t.Fatalf("coverage entries = %d", len(rep.Coverage))
	}

	want, err := pathloss.Cost231{FrequencyMHz: 1800, BaseHeightM: 30, MobileHeightM: 1.5}.Loss(1)
	if err != nil {
		t.Fatal(err)
	}
	a := rep.Coverage[0]
	if math.Abs(a.LossDB-want) > 1e-12 || math.Abs(a.ReceivedPowerDBm-(43-want)) > 1e-12 {
		t.Fatalf("tower a = %+v", a)
	}
	if a.RadiusM != 1000 {
		t.Fatalf("tower a radius = %v, want 1000", a.RadiusM)
	}
	if rep.Coverage[1].RadiusM != 500 {
		t.Fatalf("tower b radius = %v, want 500", rep.Coverage[1].RadiusM)
	}

	if len(rep.Interference) != 1 {
		t.Fatalf("interference = %+v", rep.Interference)
	}
	if got := rep.Interference[0]; got.Tower1 != "a" || got.Tower2 != "b" || math.Abs(got.Distance-0.003) > 1e-9 {
		t.Fatalf("interference = %+v", got)
	}
}

func TestEvaluateTowersInvalid(t *testing.T) {
	towers := []Tower{{ID: "x", BaseHeightM: 0, FrequencyMHz: 900}}
	if _, err := EvaluateTowers(towers, pathloss.EnvironmentUrban, DefaultOptions()); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	towers = []Tower{{ID: "x", BaseHeightM: 30, FrequencyMHz: 900}}
	if _, err := EvaluateTowers(towers, pathloss.EnvironmentOpen, DefaultOptions()); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}
