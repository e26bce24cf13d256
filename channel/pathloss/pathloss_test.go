package pathloss

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

func mustLoss(t *testing.T, m Model, d float64) float64 {
	t.Helper()
	l, err := m.Loss(d)
	if err != nil {
		t.Fatalf("%s.Loss(%g): %v", m.Name(), d, err)
	}
	return l
}

func TestFreeSpaceReference(t *testing.T) {
	m := FreeSpace{FrequencyMHz: 2400}
	got := mustLoss(t, m, 1)
	want := 32.45 + 20*math.Log10(2400)
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("fspl(1 km, 2400 MHz) = %.4f, want %.4f", got, want)
	}
}

func TestWavelengthUsesSpeedOfLight(t *testing.T) {
	if got := Wavelength(299.792458); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Wavelength(299.792458 MHz) = %v m, want 1", got)
	}
}

func TestFreeSpaceStrictlyIncreasing(t *testing.T) {
	m := FreeSpace{FrequencyMHz: 900}
	prev := math.Inf(-1)
	for _, d := range []float64{0.001, 0.01, 0.5, 1, 2, 10, 100} {
		l := mustLoss(t, m, d)
		if !(l > prev) {
			t.Fatalf("loss(%g)=%g not greater than %g", d, l, prev)
		}
		prev = l
	}
}

func TestZeroDistanceIsFinite(t *testing.T) {
	models := []Model{DefaultFreeSpace(), DefaultCost231(), DefaultTwoRay(), DefaultNLOS(), DefaultWeissberger(), DefaultLongleyRice()}
	for _, m := range models {
		l := mustLoss(t, m, 0)
		if math.IsInf(l, 0) || math.IsNaN(l) {
			t.Fatalf("%s.Loss(0) = %v, want finite", m.Name(), l)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		m    Model
		d    float64
	}{
		{"fspl zero frequency", FreeSpace{}, 1},
		{"fspl negative distance", DefaultFreeSpace(), -1},
		{"fspl nan distance", DefaultFreeSpace(), math.NaN()},
		{"cost231 zero base", Cost231{FrequencyMHz: 900, MobileHeightM: 1.5}, 1},
		{"two-ray zero rx", TwoRay{FrequencyMHz: 900, TxHeightM: 30}, 1},
		{"weissberger zero depth", Weissberger{FrequencyMHz: 900}, 1},
		{"longley-rice negative terrain", LongleyRice{FrequencyMHz: 900, TxHeightM: 30, RxHeightM: 1.5, TerrainIrregularityM: -1}, 1},
		{"hata frequency low", OkumuraHata{FrequencyMHz: 149, BaseHeightM: 50, MobileHeightM: 1.5}, 5},
		{"hata frequency high", OkumuraHata{FrequencyMHz: 1501, BaseHeightM: 50, MobileHeightM: 1.5}, 5},
		{"hata base low", OkumuraHata{FrequencyMHz: 900, BaseHeightM: 29, MobileHeightM: 1.5}, 5},
		{"hata base high", OkumuraHata{FrequencyMHz: 900, BaseHeightM: 201, MobileHeightM: 1.5}, 5},
		{"hata mobile low", OkumuraHata{FrequencyMHz: 900, BaseHeightM: 50, MobileHeightM: 0.5}, 5},
		{"hata mobile high", OkumuraHata{FrequencyMHz: 900, BaseHeightM: 50, MobileHeightM: 11}, 5},
		{"hata distance low", DefaultOkumuraHata(), 0.5},
		{"hata distance high", DefaultOkumuraHata(), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Loss(tt.d)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestCost231(t *testing.T) {
	m := Cost231{FrequencyMHz: 1800, BaseHeightM: 30, MobileHeightM: 1.5, Environment: EnvironmentUrban}
	if got := mustLoss(t, m, 2); math.Abs(got-149.8006858405123) > 1e-9 {
		t.Fatalf("urban loss = %.10f", got)
	}

	sub := m
	sub.Environment = EnvironmentSuburban
	if d := mustLoss(t, m, 2) - mustLoss(t, sub, 2); math.Abs(d-3) > 1e-9 {
		t.Fatalf("urban-suburban delta = %v, want 3", d)
	}

	open := m
	open.Environment = EnvironmentOpen
	if _, err := open.Loss(2); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestOkumuraHataUnknownCity(t *testing.T) {
	m := DefaultOkumuraHata()
	m.City = CitySize(7)
	if err := m.Validate(); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("Validate() = %v, want ErrUnsupportedVariant", err)
	}
	if _, err := m.Loss(5); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("Loss() = %v, want ErrUnsupportedVariant", err)
	}
}

func TestOkumuraHata(t *testing.T) {
	base := OkumuraHata{FrequencyMHz: 900, BaseHeightM: 50, MobileHeightM: 1.5}

	tests := []struct {
		name string
		env  Environment
		city CitySize
		want float64
	}{
		{"urban medium", EnvironmentUrban, CityMediumSmall, 146.94277453884794},
		{"urban large", EnvironmentUrban, CityLarge, 146.95957541165197},
		{"suburban", EnvironmentSuburban, CityMediumSmall, 137.00016729060548},
		{"rural", EnvironmentRural, CityMediumSmall, 118.43635645098621},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			m.Environment = tt.env
			m.City = tt.city
			if got := mustLoss(t, m, 5); math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("loss = %.10f, want %.10f", got, tt.want)
			}
		})
	}
}

func TestTwoRayCrossover(t *testing.T) {
	m := DefaultTwoRay()
	dc := m.CrossoverKm()
	// 4·30·1.5/λ at 900 MHz, about 540 m.
	if want := 4 * 30 * 1.5 / Wavelength(900) / 1e3; math.Abs(dc-want) > 1e-12 || math.Abs(dc-0.54) > 1e-3 {
		t.Fatalf("crossover = %v km, want %v", dc, want)
	}

	fs := FreeSpace{FrequencyMHz: m.FrequencyMHz}
	for _, d := range []float64{0.01, 0.2, dc} {
		if got, want := mustLoss(t, m, d), mustLoss(t, fs, d); math.Abs(got-want) > 1e-12 {
			t.Fatalf("d=%g: two-ray %v, free space %v", d, got, want)
		}
	}

	for _, d := range []float64{0.6, 2, 10} {
		want := 40*math.Log10(d*1e3) - 20*math.Log10(m.TxHeightM*m.RxHeightM)
		if got := mustLoss(t, m, d); math.Abs(got-want) > 1e-12 {
			t.Fatalf("d=%g: got %v, want %v", d, got, want)
		}
	}
}

func TestNLOSMargins(t *testing.T) {
	fs := mustLoss(t, FreeSpace{FrequencyMHz: 2400}, 0.3)
	for env, margin := range map[Environment]float64{
		EnvironmentUrban:    20,
		EnvironmentSuburban: 15,
		EnvironmentOpen:     10,
	} {
		got := mustLoss(t, NLOS{FrequencyMHz: 2400, Environment: env}, 0.3)
		if math.Abs(got-fs-margin) > 1e-12 {
			t.Fatalf("%s margin = %v, want %v", env, got-fs, margin)
		}
	}

	override := 7.5
	got := mustLoss(t, NLOS{FrequencyMHz: 2400, Environment: EnvironmentRural, MarginDB: &override}, 0.3)
	if math.Abs(got-fs-override) > 1e-12 {
		t.Fatalf("override margin = %v", got-fs)
	}

	if _, err := (NLOS{FrequencyMHz: 2400, Environment: EnvironmentRural}).Loss(1); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestWeissberger(t *testing.T) {
	m := Weissberger{FrequencyMHz: 900, FoliageDepthKm: 0.1}
	want := 1.33 * math.Pow(900, 0.284) * math.Pow(0.2, 0.588)
	if got := mustLoss(t, m, 2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLongleyRiceClimate(t *testing.T) {
	m := DefaultLongleyRice()
	m.Climate = ClimateNone
	none := mustLoss(t, m, 10)

	m.Climate = ClimateMaritimeTemperate
	if d := mustLoss(t, m, 10) - none; math.Abs(d-2) > 1e-12 {
		t.Fatalf("maritime offset = %v, want 2", d)
	}

	fs := mustLoss(t, FreeSpace{FrequencyMHz: 900}, 10)
	want := fs + 5 + 2 - 10*math.Log10(45)
	if got := mustLoss(t, m, 10); math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseVariants(t *testing.T) {
	if c, err := ParseClimate("Tempéré continental"); err != nil || c != ClimateContinentalTemperate {
		t.Fatalf("ParseClimate = %v, %v", c, err)
	}
	if c, err := ParseClimate("maritime_temperate"); err != nil || c != ClimateMaritimeTemperate {
		t.Fatalf("ParseClimate = %v, %v", c, err)
	}
	if c, err := ParseCitySize("Grande"); err != nil || c != CityLarge {
		t.Fatalf("ParseCitySize = %v, %v", c, err)
	}
	if e, err := ParseEnvironment("Suburban"); err != nil || e != EnvironmentSuburban {
		t.Fatalf("ParseEnvironment = %v, %v", e, err)
	}

	for _, fn := range []func() error{
		func() error { _, err := ParseClimate("tropical"); return err },
		func() error { _, err := ParseCitySize("village"); return err },
		func() error { _, err := ParseEnvironment("desert"); return err },
		func() error { _, err := ParseModel("okumura"); return err },
	} {
		if err := fn(); !errors.Is(err, core.ErrUnsupportedVariant) {
			t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
		}
	}
}

func TestParseModelAndCurve(t *testing.T) {
	for _, name := range ModelNames() {
		m, err := ParseModel(name)
		if err != nil {
			t.Fatalf("ParseModel(%q): %v", name, err)
		}
		if m.Name() != name {
			t.Fatalf("ParseModel(%q).Name() = %q", name, m.Name())
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("default %s invalid: %v", name, err)
		}
	}

	m, err := ParseModel("Free Space")
	if err != nil {
		t.Fatal(err)
	}
	losses, err := Curve(m, []float64{1, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(losses) != 3 || math.Abs(losses[1]-losses[0]-20*math.Log10(2)) > 1e-9 {
		t.Fatalf("unexpected curve %v", losses)
	}

	if _, err := Curve(m, []float64{1, -1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if _, err := Curve(nil, nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestLinkBudgetHelpers(t *testing.T) {
	if got := ReceivedPowerDBm(43, 120); got != -77 {
		t.Fatalf("ReceivedPowerDBm = %v", got)
	}
	if got := AmplitudeFactor(20); math.Abs(got-0.1) > 1e-15 {
		t.Fatalf("AmplitudeFactor(20) = %v", got)
	}
	if got := PowerFactor(20); math.Abs(got-0.01) > 1e-15 {
		t.Fatalf("PowerFactor(20) = %v", got)
	}
}
