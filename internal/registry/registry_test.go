package registry

import (
	"testing"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

func TestBuiltinCategoryOrder(t *testing.T) {
	want := []string{
		"Length", "Weight", "Temperature", "Volume", "Area",
		"Energy", "Speed", "Time", "Digital Storage",
	}
	got := Builtin().ListCategories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuiltinUnitCounts(t *testing.T) {
	counts := map[string]int{
		"Length":          9,
		"Weight":          7,
		"Temperature":     4,
		"Volume":          10,
		"Area":            9,
		"Energy":          8,
		"Speed":           6,
		"Time":            8,
		"Digital Storage": 11,
	}
	total := 0
	for name, n := range counts {
		units, err := Builtin().ListUnits(name)
		if err != nil {
			t.Fatalf("ListUnits(%q): %v", name, err)
		}
		if len(units) != n {
			t.Errorf("%s: expected %d units, got %d", name, n, len(units))
		}
		total += len(units)
	}
	if total != 72 {
		t.Fatalf("expected 72 units overall, got %d", total)
	}
}

func TestListUnitsPreservesOrder(t *testing.T) {
	units, err := Builtin().ListUnits("Length")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units[0] != "Millimeter (mm)" || units[len(units)-1] != "Nautical Mile (nmi)" {
		t.Fatalf("unexpected order: %v", units)
	}
}

func TestLookupFactorsAreExact(t *testing.T) {
	cases := []struct {
		category string
		unit     string
		factor   float64
	}{
		{"Length", "mi", 1609.344},
		{"Weight", "Pound (lb)", 0.453592},
		{"Volume", "fl-oz", 0.0295735},
		{"Area", "ac", 4046.86},
		{"Energy", "eV", 1.602176634e-19},
		{"Speed", "km/h", 0.277778},
		{"Time", "yr", 31556952},
		{"Digital Storage", "TiB", 8796093022208},
	}
	for _, c := range cases {
		def, err := Builtin().Lookup(c.category, c.unit)
		if err != nil {
			t.Fatalf("Lookup(%q, %q): %v", c.category, c.unit, err)
		}
		if def.Kind != domain.KindLinear || def.Factor != c.factor {
			t.Errorf("Lookup(%q, %q) = %+v, want factor %v", c.category, c.unit, def, c.factor)
		}
	}
}

func TestBaseUnitsHaveFactorOne(t *testing.T) {
	for _, c := range Builtin().Categories() {
		if c.Kind != domain.KindLinear {
			continue
		}
		found := false
		for _, u := range c.Units {
			if u.Def.Factor == 1 {
				found = true
			}
			if u.Def.Factor <= 0 {
				t.Errorf("%s/%s: factor must be positive", c.Name, u.Label)
			}
		}
		if !found {
			t.Errorf("%s: no base unit", c.Name)
		}
	}
}

func TestLookupTemperatureTags(t *testing.T) {
	def, err := Builtin().Lookup("Temperature", "Rankine (°R)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Kind != domain.KindTemperature || def.Scale != domain.Rankine {
		t.Fatalf("unexpected def: %+v", def)
	}
}

func TestCategoryMatchesNameOrKeyIgnoringCase(t *testing.T) {
	for _, name := range []string{"Digital Storage", "digital storage", "digital-storage", "  Length "} {
		if _, err := Builtin().Category(name); err != nil {
			t.Errorf("Category(%q): %v", name, err)
		}
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	_, err := Builtin().Lookup("Luminosity", "lx")
	if !domain.IsKind(err, domain.KindUnknownCategory) {
		t.Fatalf("expected KindUnknownCategory, got %v", err)
	}
	if _, err := Builtin().ListUnits("Luminosity"); !domain.IsKind(err, domain.KindUnknownCategory) {
		t.Fatalf("expected KindUnknownCategory from ListUnits, got %v", err)
	}
}

func TestLookupUnknownUnit(t *testing.T) {
	_, err := Builtin().Lookup("Length", "parsec")
	if !domain.IsKind(err, domain.KindUnknownUnit) {
		t.Fatalf("expected KindUnknownUnit, got %v", err)
	}
}

func TestCategoriesReturnsCopies(t *testing.T) {
	cats := Builtin().Categories()
	cats[0].Units[0].Def.Factor = 42

	def, err := Builtin().Lookup("Length", "mm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Factor != 0.001 {
		t.Fatalf("registry was mutated through a returned copy")
	}
}

func TestQuickConversionsResolve(t *testing.T) {
	quick := Builtin().QuickConversions()
	if len(quick) != 5 {
		t.Fatalf("expected 5 presets, got %d", len(quick))
	}
	for _, q := range quick {
		if _, err := Builtin().Unit(q.Category, q.From); err != nil {
			t.Errorf("%s: from: %v", q.Name, err)
		}
		if _, err := Builtin().Unit(q.Category, q.To); err != nil {
			t.Errorf("%s: to: %v", q.Name, err)
		}
	}
}
