// Package registry holds the fixed table of categories and units.
package registry

import (
	"strings"
	"sync"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

// Registry is an immutable category/unit table. All accessors return copies.
type Registry struct {
	categories []domain.Category
	quick      []domain.QuickConversion
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the process-wide registry built from the reference table.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = New(builtinCategories(), builtinQuickConversions())
	})
	return builtin
}

// New builds a registry from the given categories. The input is copied.
func New(categories []domain.Category, quick []domain.QuickConversion) *Registry {
	r := &Registry{
		categories: make([]domain.Category, 0, len(categories)),
		quick:      append([]domain.QuickConversion(nil), quick...),
	}
	for _, c := range categories {
		r.categories = append(r.categories, cloneCategory(c))
	}
	return r
}

var _ ports.UnitRegistry = (*Registry)(nil)

// ListCategories returns category names in registry order.
func (r *Registry) ListCategories() []string {
	out := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Name)
	}
	return out
}

// Categories returns every category in registry order.
func (r *Registry) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, cloneCategory(c))
	}
	return out
}

// ListUnits returns the unit labels of a category in registry order.
func (r *Registry) ListUnits(category string) ([]string, error) {
	c, ok := r.find(category)
	if !ok {
		return nil, domain.UnknownCategory("registry.list_units", category)
	}
	return c.Labels(), nil
}

// Category resolves a category by name or key, ignoring case.
func (r *Registry) Category(name string) (domain.Category, error) {
	c, ok := r.find(name)
	if !ok {
		return domain.Category{}, domain.UnknownCategory("registry.category", name)
	}
	return cloneCategory(c), nil
}

// Unit resolves a unit by label or symbol inside a category.
func (r *Registry) Unit(category, unit string) (domain.Unit, error) {
	c, ok := r.find(category)
	if !ok {
		return domain.Unit{}, domain.UnknownCategory("registry.unit", category)
	}
	u, ok := c.Find(unit)
	if !ok {
		return domain.Unit{}, domain.UnknownUnit("registry.unit", c.Name, unit)
	}
	return u, nil
}

// Lookup returns the definition of a unit inside a category.
func (r *Registry) Lookup(category, unit string) (domain.UnitDefinition, error) {
	c, ok := r.find(category)
	if !ok {
		return domain.UnitDefinition{}, domain.UnknownCategory("registry.lookup", category)
	}
	u, ok := c.Find(unit)
	if !ok {
		return domain.UnitDefinition{}, domain.UnknownUnit("registry.lookup", c.Name, unit)
	}
	return u.Def, nil
}

// QuickConversions returns the preset conversion pairs.
func (r *Registry) QuickConversions() []domain.QuickConversion {
	return append([]domain.QuickConversion(nil), r.quick...)
}

func (r *Registry) find(name string) (domain.Category, bool) {
	n := strings.TrimSpace(name)
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, n) || strings.EqualFold(c.Key, n) {
			return c, true
		}
	}
	return domain.Category{}, false
}

func cloneCategory(c domain.Category) domain.Category {
	out := c
	out.Units = append([]domain.Unit(nil), c.Units...)
	return out
}
