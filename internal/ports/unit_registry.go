package ports

import "github.com/aalvaropc/unitcalc/internal/domain"

// UnitRegistry exposes the category/unit table.
type UnitRegistry interface {
	ListCategories() []string
	ListUnits(category string) ([]string, error)
	Lookup(category, unit string) (domain.UnitDefinition, error)
	Category(name string) (domain.Category, error)
	Unit(category, unit string) (domain.Unit, error)
}
