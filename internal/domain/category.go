package domain

// CategoryKind selects the conversion algorithm for a category.
type CategoryKind string

const (
	KindLinear      CategoryKind = "linear"
	KindTemperature CategoryKind = "temperature"
)

// TemperatureScale tags a temperature unit.
type TemperatureScale string

const (
	Celsius    TemperatureScale = "celsius"
	Fahrenheit TemperatureScale = "fahrenheit"
	Kelvin     TemperatureScale = "kelvin"
	Rankine    TemperatureScale = "rankine"
)

// UnitDefinition is a tagged variant: a linear factor relative to the category's
// base unit, or a temperature scale tag. Only the field matching Kind is meaningful.
type UnitDefinition struct {
	Kind   CategoryKind
	Factor float64
	Scale  TemperatureScale
}

// Linear returns a factor-based definition.
func Linear(factor float64) UnitDefinition {
	return UnitDefinition{Kind: KindLinear, Factor: factor}
}

// Temperature returns a scale-tagged definition.
func Temperature(scale TemperatureScale) UnitDefinition {
	return UnitDefinition{Kind: KindTemperature, Scale: scale}
}

// Unit is a single entry of a category.
// Symbol is the stable identifier; Label is what people see ("Pound (lb)").
type Unit struct {
	Symbol string
	Label  string
	Def    UnitDefinition
}

// Category groups mutually convertible units.
type Category struct {
	Key   string
	Name  string
	Icon  string
	Kind  CategoryKind
	Info  string
	Units []Unit
}

// Labels returns the unit labels in registry order.
func (c Category) Labels() []string {
	out := make([]string, 0, len(c.Units))
	for _, u := range c.Units {
		out = append(out, u.Label)
	}
	return out
}

// Find resolves a unit by label or symbol. Matching is exact: symbols such as
// "b" and "B" differ only by case.
func (c Category) Find(unit string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Label == unit || u.Symbol == unit {
			return u, true
		}
	}
	return Unit{}, false
}
