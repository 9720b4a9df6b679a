package registry

import "github.com/aalvaropc/unitcalc/internal/domain"

func lin(symbol, label string, factor float64) domain.Unit {
	return domain.Unit{Symbol: symbol, Label: label, Def: domain.Linear(factor)}
}

func temp(symbol, label string, scale domain.TemperatureScale) domain.Unit {
	return domain.Unit{Symbol: symbol, Label: label, Def: domain.Temperature(scale)}
}

// builtinCategories is the reference table. Factors are relative to the base
// unit of each category (factor 1) and must not be rounded or recomputed.
func builtinCategories() []domain.Category {
	return []domain.Category{
		{
			Key:  "length",
			Name: "Length",
			Icon: "📏",
			Kind: domain.KindLinear,
			Info: "Metric: mm, cm, m, km\nImperial: in, ft, yd, mi\nSpecial: Nautical miles for navigation",
			Units: []domain.Unit{
				lin("mm", "Millimeter (mm)", 0.001),
				lin("cm", "Centimeter (cm)", 0.01),
				lin("m", "Meter (m)", 1.0),
				lin("km", "Kilometer (km)", 1000.0),
				lin("in", "Inch (in)", 0.0254),
				lin("ft", "Foot (ft)", 0.3048),
				lin("yd", "Yard (yd)", 0.9144),
				lin("mi", "Mile (mi)", 1609.344),
				lin("nmi", "Nautical Mile (nmi)", 1852.0),
			},
		},
		{
			Key:  "weight",
			Name: "Weight",
			Icon: "⚖️",
			Kind: domain.KindLinear,
			Info: "Metric: mg, g, kg, t (metric tons)\nImperial: oz, lb, st (stones)",
			Units: []domain.Unit{
				lin("mg", "Milligram (mg)", 0.000001),
				lin("g", "Gram (g)", 0.001),
				lin("kg", "Kilogram (kg)", 1.0),
				lin("t", "Ton (t)", 1000.0),
				lin("oz", "Ounce (oz)", 0.0283495),
				lin("lb", "Pound (lb)", 0.453592),
				lin("st", "Stone (st)", 6.35029),
			},
		},
		{
			Key:  "temperature",
			Name: "Temperature",
			Icon: "🌡️",
			Kind: domain.KindTemperature,
			Info: "Celsius (°C): water freezes at 0°C, boils at 100°C\n" +
				"Fahrenheit (°F): water freezes at 32°F, boils at 212°F\n" +
				"Kelvin (K): absolute scale, 0K = -273.15°C\n" +
				"Rankine (°R): absolute Fahrenheit scale, 0°R = -459.67°F",
			Units: []domain.Unit{
				temp("celsius", "Celsius (°C)", domain.Celsius),
				temp("fahrenheit", "Fahrenheit (°F)", domain.Fahrenheit),
				temp("kelvin", "Kelvin (K)", domain.Kelvin),
				temp("rankine", "Rankine (°R)", domain.Rankine),
			},
		},
		{
			Key:  "volume",
			Name: "Volume",
			Icon: "💧",
			Kind: domain.KindLinear,
			Info: "Metric: ml, l, m³\nImperial: fl oz, cup, pt, qt, gal\nCubic: in³, ft³",
			Units: []domain.Unit{
				lin("ml", "Milliliter (ml)", 0.001),
				lin("l", "Liter (l)", 1.0),
				lin("m³", "Cubic Meter (m³)", 1000.0),
				lin("fl-oz", "Fluid Ounce (fl oz)", 0.0295735),
				lin("cup", "Cup (cup)", 0.236588),
				lin("pt", "Pint (pt)", 0.473176),
				lin("qt", "Quart (qt)", 0.946353),
				lin("gal", "Gallon (gal)", 3.78541),
				lin("in³", "Cubic Inch (in³)", 0.0163871),
				lin("ft³", "Cubic Foot (ft³)", 28.3168),
			},
		},
		{
			Key:  "area",
			Name: "Area",
			Icon: "📐",
			Kind: domain.KindLinear,
			Units: []domain.Unit{
				lin("mm²", "Square Millimeter (mm²)", 0.000001),
				lin("cm²", "Square Centimeter (cm²)", 0.0001),
				lin("m²", "Square Meter (m²)", 1.0),
				lin("km²", "Square Kilometer (km²)", 1000000.0),
				lin("in²", "Square Inch (in²)", 0.00064516),
				lin("ft²", "Square Foot (ft²)", 0.092903),
				lin("yd²", "Square Yard (yd²)", 0.836127),
				lin("ac", "Acre (ac)", 4046.86),
				lin("ha", "Hectare (ha)", 10000.0),
			},
		},
		{
			Key:  "energy",
			Name: "Energy",
			Icon: "⚡",
			Kind: domain.KindLinear,
			Units: []domain.Unit{
				lin("J", "Joule (J)", 1.0),
				lin("kJ", "Kilojoule (kJ)", 1000.0),
				lin("cal", "Calorie (cal)", 4.184),
				lin("kcal", "Kilocalorie (kcal)", 4184.0),
				lin("Wh", "Watt-hour (Wh)", 3600.0),
				lin("kWh", "Kilowatt-hour (kWh)", 3600000.0),
				lin("BTU", "BTU", 1055.06),
				lin("eV", "Electronvolt (eV)", 1.602176634e-19),
			},
		},
		{
			Key:  "speed",
			Name: "Speed",
			Icon: "💨",
			Kind: domain.KindLinear,
			Units: []domain.Unit{
				lin("m/s", "Meter per Second (m/s)", 1.0),
				lin("km/h", "Kilometer per Hour (km/h)", 0.277778),
				lin("mph", "Mile per Hour (mph)", 0.44704),
				lin("ft/s", "Foot per Second (ft/s)", 0.3048),
				lin("kt", "Knot (kt)", 0.514444),
				lin("Mach", "Mach", 343.0),
			},
		},
		{
			Key:  "time",
			Name: "Time",
			Icon: "⏱️",
			Kind: domain.KindLinear,
			Units: []domain.Unit{
				lin("ms", "Millisecond (ms)", 0.001),
				lin("s", "Second (s)", 1.0),
				lin("min", "Minute (min)", 60.0),
				lin("h", "Hour (h)", 3600.0),
				lin("d", "Day (d)", 86400.0),
				lin("wk", "Week (wk)", 604800.0),
				lin("mo", "Month (mo)", 2629746.0),
				lin("yr", "Year (yr)", 31556952.0),
			},
		},
		{
			Key:  "digital-storage",
			Name: "Digital Storage",
			Icon: "💾",
			Kind: domain.KindLinear,
			Info: "Decimal: KB, MB, GB, TB (base 1000)\nBinary: KiB, MiB, GiB, TiB (base 1024)\nBasic: Bits and Bytes",
			Units: []domain.Unit{
				lin("b", "Bit (b)", 1.0),
				lin("B", "Byte (B)", 8.0),
				lin("KB", "Kilobyte (KB)", 8000.0),
				lin("MB", "Megabyte (MB)", 8000000.0),
				lin("GB", "Gigabyte (GB)", 8000000000.0),
				lin("TB", "Terabyte (TB)", 8000000000000.0),
				lin("PB", "Petabyte (PB)", 8000000000000000.0),
				lin("KiB", "Kibibyte (KiB)", 8192.0),
				lin("MiB", "Mebibyte (MiB)", 8388608.0),
				lin("GiB", "Gibibyte (GiB)", 8589934592.0),
				lin("TiB", "Tebibyte (TiB)", 8796093022208.0),
			},
		},
	}
}

// builtinQuickConversions mirrors the sidebar shortcuts of the calculator.
func builtinQuickConversions() []domain.QuickConversion {
	return []domain.QuickConversion{
		{Name: "°C to °F", Category: "Temperature", From: "Celsius (°C)", To: "Fahrenheit (°F)"},
		{Name: "ft to m", Category: "Length", From: "Foot (ft)", To: "Meter (m)"},
		{Name: "lb to kg", Category: "Weight", From: "Pound (lb)", To: "Kilogram (kg)"},
		{Name: "gal to L", Category: "Volume", From: "Gallon (gal)", To: "Liter (l)"},
		{Name: "mph to km/h", Category: "Speed", From: "Mile per Hour (mph)", To: "Kilometer per Hour (km/h)"},
	}
}
