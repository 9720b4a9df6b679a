package usecase

import (
	"math"
	"testing"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/registry"
)

func approxEqual(a, b, rel float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= rel*scale
}

func convert(t *testing.T, v float64, category, from, to string) float64 {
	t.Helper()
	res, err := NewConverter(registry.Builtin()).Convert(domain.ConversionRequest{
		Value:    v,
		Category: category,
		From:     from,
		To:       to,
	})
	if err != nil {
		t.Fatalf("Convert(%v, %q, %q, %q): %v", v, category, from, to, err)
	}
	return res.Value
}

var sampleValues = []float64{-40, -1.5, 0, 1, 3.14159, 100, 12345.678}

func TestIdentityIsExact(t *testing.T) {
	for _, c := range registry.Builtin().Categories() {
		for _, u := range c.Units {
			for _, v := range sampleValues {
				if got := convert(t, v, c.Name, u.Label, u.Label); got != v {
					t.Fatalf("%s/%s: identity changed %v to %v", c.Name, u.Label, v, got)
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range registry.Builtin().Categories() {
		for _, a := range c.Units {
			for _, b := range c.Units {
				for _, v := range sampleValues {
					there := convert(t, v, c.Name, a.Label, b.Label)
					back := convert(t, there, c.Name, b.Label, a.Label)
					if !approxEqual(back, v, 1e-9) {
						t.Fatalf("%s: %v %s -> %s -> %s = %v", c.Name, v, a.Symbol, b.Symbol, a.Symbol, back)
					}
				}
			}
		}
	}
}

func TestLinearity(t *testing.T) {
	for _, c := range registry.Builtin().Categories() {
		if c.Kind != domain.KindLinear {
			continue
		}
		for _, a := range c.Units {
			for _, b := range c.Units {
				for _, k := range []float64{-2, 0.5, 3, 1000} {
					lhs := convert(t, k*7.25, c.Name, a.Label, b.Label)
					rhs := k * convert(t, 7.25, c.Name, a.Label, b.Label)
					if !approxEqual(lhs, rhs, 1e-12) && !approxEqual(lhs/rhs, 1, 1e-12) {
						t.Fatalf("%s %s->%s: f(%v·v)=%v, %v·f(v)=%v", c.Name, a.Symbol, b.Symbol, k, lhs, k, rhs)
					}
				}
			}
		}
	}
}

func TestTemperatureFixedPoints(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{0, "celsius", "fahrenheit", 32},
		{0, "celsius", "kelvin", 273.15},
		{100, "celsius", "fahrenheit", 212},
		{212, "Fahrenheit (°F)", "Celsius (°C)", 100},
		{-40, "celsius", "fahrenheit", -40},
		{0, "kelvin", "rankine", 0},
	}
	for _, c := range cases {
		if got := convert(t, c.v, "Temperature", c.from, c.to); got != c.want {
			t.Errorf("%v %s -> %s: got %v, want %v", c.v, c.from, c.to, got, c.want)
		}
	}

	if got := convert(t, 0, "Temperature", "celsius", "rankine"); !approxEqual(got, 491.67, 1e-12) {
		t.Errorf("0°C in °R: got %v", got)
	}
}

func TestConcreteScenarios(t *testing.T) {
	if got := convert(t, 1, "Weight", "Pound (lb)", "Kilogram (kg)"); math.Abs(got-0.453592) > 1e-6 {
		t.Errorf("1 lb in kg: got %v", got)
	}
	// One megabyte is 8e6/8192 KiB; the value scales linearly from there.
	if got := convert(t, 1, "Digital Storage", "Megabyte (MB)", "Kibibyte (KiB)"); math.Abs(got-976.5625) > 1e-9 {
		t.Errorf("1 MB in KiB: got %v", got)
	}
	if got := convert(t, 100, "Digital Storage", "Megabyte (MB)", "Kibibyte (KiB)"); math.Abs(got-97656.25) > 1e-9 {
		t.Errorf("100 MB in KiB: got %v", got)
	}
	if got := convert(t, 1, "Length", "mi", "km"); !approxEqual(got, 1.609344, 1e-12) {
		t.Errorf("1 mi in km: got %v", got)
	}
}

func TestUnknownUnit(t *testing.T) {
	_, err := NewConverter(registry.Builtin()).Convert(domain.ConversionRequest{
		Value: 1, Category: "Length", From: "parsec", To: "m",
	})
	if !domain.IsKind(err, domain.KindUnknownUnit) {
		t.Fatalf("expected KindUnknownUnit, got %v", err)
	}

	_, err = NewConverter(registry.Builtin()).Convert(domain.ConversionRequest{
		Value: 1, Category: "Length", From: "m", To: "parsec",
	})
	if !domain.IsKind(err, domain.KindUnknownUnit) {
		t.Fatalf("expected KindUnknownUnit for target, got %v", err)
	}
}

func TestUnknownCategory(t *testing.T) {
	_, err := NewConverter(registry.Builtin()).Convert(domain.ConversionRequest{
		Value: 1, Category: "Luminosity", From: "lx", To: "fc",
	})
	if !domain.IsKind(err, domain.KindUnknownCategory) {
		t.Fatalf("expected KindUnknownCategory, got %v", err)
	}
}

func TestMismatchedDefinitions(t *testing.T) {
	broken := registry.New([]domain.Category{
		{
			Name: "Broken",
			Kind: domain.KindLinear,
			Units: []domain.Unit{
				{Symbol: "m", Label: "Meter (m)", Def: domain.Linear(1)},
				{Symbol: "c", Label: "Celsius (°C)", Def: domain.Temperature(domain.Celsius)},
			},
		},
		{
			Name: "Odd Temperature",
			Kind: domain.KindTemperature,
			Units: []domain.Unit{
				{Symbol: "c", Label: "Celsius (°C)", Def: domain.Temperature(domain.Celsius)},
				{Symbol: "x", Label: "Delisle", Def: domain.Temperature("delisle")},
			},
		},
	}, nil)

	conv := NewConverter(broken)
	_, err := conv.Convert(domain.ConversionRequest{Value: 1, Category: "Broken", From: "m", To: "c"})
	if !domain.IsKind(err, domain.KindUnitMismatch) {
		t.Fatalf("expected KindUnitMismatch, got %v", err)
	}

	_, err = conv.Convert(domain.ConversionRequest{Value: 1, Category: "Odd Temperature", From: "c", To: "x"})
	if !domain.IsKind(err, domain.KindUnitMismatch) {
		t.Fatalf("expected KindUnitMismatch for unknown scale, got %v", err)
	}
}

func TestNonFiniteValuesPropagate(t *testing.T) {
	if got := convert(t, math.Inf(1), "Length", "m", "ft"); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
	if got := convert(t, math.NaN(), "Temperature", "celsius", "kelvin"); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
	if got := convert(t, -500, "Temperature", "celsius", "kelvin"); got >= 0 {
		t.Errorf("below absolute zero must pass through, got %v", got)
	}
}

func TestResultCarriesCanonicalLabels(t *testing.T) {
	res, err := NewConverter(registry.Builtin()).Convert(domain.ConversionRequest{
		Value: 2, Category: "weight", From: "lb", To: "kg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Category.Name != "Weight" || res.From.Label != "Pound (lb)" || res.To.Label != "Kilogram (kg)" {
		t.Fatalf("unexpected canonical labels: %+v", res)
	}
}
