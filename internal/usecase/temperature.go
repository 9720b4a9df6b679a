package usecase

import (
	"fmt"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

// ConvertTemperature converts through Celsius: every scale knows how to reach
// Celsius and how to leave it, so n scales need 2n formulas rather than n².
func ConvertTemperature(value float64, from, to domain.TemperatureScale) (float64, error) {
	if from == to {
		if !isKnownScale(from) {
			return 0, unknownScale(from)
		}
		return value, nil
	}

	c, err := toCelsius(value, from)
	if err != nil {
		return 0, err
	}
	return fromCelsius(c, to)
}

func toCelsius(v float64, from domain.TemperatureScale) (float64, error) {
	switch from {
	case domain.Celsius:
		return v, nil
	case domain.Fahrenheit:
		return (v - 32) * 5 / 9, nil
	case domain.Kelvin:
		return v - 273.15, nil
	case domain.Rankine:
		return (v * 5 / 9) - 273.15, nil
	default:
		return 0, unknownScale(from)
	}
}

func fromCelsius(c float64, to domain.TemperatureScale) (float64, error) {
	switch to {
	case domain.Celsius:
		return c, nil
	case domain.Fahrenheit:
		return c*9/5 + 32, nil
	case domain.Kelvin:
		return c + 273.15, nil
	case domain.Rankine:
		return (c + 273.15) * 9 / 5, nil
	default:
		return 0, unknownScale(to)
	}
}

func isKnownScale(s domain.TemperatureScale) bool {
	switch s {
	case domain.Celsius, domain.Fahrenheit, domain.Kelvin, domain.Rankine:
		return true
	}
	return false
}

func unknownScale(s domain.TemperatureScale) error {
	return &domain.OpError{
		Op:   "convert.temperature",
		Kind: domain.KindUnitMismatch,
		Err:  fmt.Errorf("%w: unknown temperature scale %q", domain.ErrUnitMismatch, s),
	}
}
