// Package format renders conversion values and history entries for display.
package format

import (
	"strconv"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

// DefaultPrecision is the number of fractional digits shown for results.
const DefaultPrecision = 6

// Value renders v with a fixed number of fractional digits.
// A negative precision falls back to DefaultPrecision.
func Value(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Input renders a user-supplied value the shortest way that round-trips.
func Input(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Conversion renders "1 Pound (lb) = 0.453592 Kilogram (kg)".
func Conversion(value float64, from string, result float64, to string, precision int) string {
	return Input(value) + " " + from + " = " + Value(result, precision) + " " + to
}

// Entry renders a history entry the same way as Conversion.
func Entry(e domain.HistoryEntry, precision int) string {
	return Conversion(e.SourceValue, e.From, e.Result, e.To, precision)
}

// Clock renders the wall-clock part of a timestamp as HH:MM:SS.
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

// ParseValue parses a user-typed number. Surrounding spaces and a thousands
// separator of "_" are accepted.
func ParseValue(s string) (float64, error) {
	return strconv.ParseFloat(trim(s), 64)
}

func trim(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '_' {
			continue
		}
		b = append(b, c)
	}
	return string(b)
}
