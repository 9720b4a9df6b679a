package usecase

import (
	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

// Converter is the conversion engine. It holds no mutable state and can be
// shared by any number of sessions without locking.
type Converter struct {
	registry ports.UnitRegistry
}

func NewConverter(r ports.UnitRegistry) *Converter {
	return &Converter{registry: r}
}

// Convert expresses req.Value, given in req.From, in req.To.
// Non-finite values are not rejected; they propagate into the result.
func (c *Converter) Convert(req domain.ConversionRequest) (domain.ConversionResult, error) {
	cat, err := c.registry.Category(req.Category)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	from, ok := cat.Find(req.From)
	if !ok {
		return domain.ConversionResult{}, domain.UnknownUnit("convert", cat.Name, req.From)
	}
	to, ok := cat.Find(req.To)
	if !ok {
		return domain.ConversionResult{}, domain.UnknownUnit("convert", cat.Name, req.To)
	}

	res := domain.ConversionResult{Category: cat, From: from, To: to}

	if from.Def.Kind != cat.Kind || to.Def.Kind != cat.Kind {
		return domain.ConversionResult{}, domain.UnitMismatch("convert", cat.Name, from.Label, to.Label)
	}

	switch cat.Kind {
	case domain.KindLinear:
		if from.Label == to.Label {
			res.Value = req.Value
			return res, nil
		}
		res.Value = req.Value * from.Def.Factor / to.Def.Factor
		return res, nil

	case domain.KindTemperature:
		v, err := ConvertTemperature(req.Value, from.Def.Scale, to.Def.Scale)
		if err != nil {
			return domain.ConversionResult{}, err
		}
		res.Value = v
		return res, nil

	default:
		return domain.ConversionResult{}, domain.UnitMismatch("convert", cat.Name, from.Label, to.Label)
	}
}
