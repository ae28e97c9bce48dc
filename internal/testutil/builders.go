package testutil

import (
	"github.com/akyairhashvil/unitconv/internal/models"
)

// UnitSystemBuilder provides fluent API for creating test unit systems.
type UnitSystemBuilder struct {
	category models.Category
	names    []string
	ratios   []float64
}

func NewUnitSystem() *UnitSystemBuilder {
	return &UnitSystemBuilder{
		category: "test",
		names:    []string{"Base", "Double"},
		ratios:   []float64{1, 2},
	}
}

func (b *UnitSystemBuilder) WithCategory(c models.Category) *UnitSystemBuilder {
	b.category = c
	return b
}

// WithUnits replaces the unit table. names and ratios are used as given.
func (b *UnitSystemBuilder) WithUnits(names []string, ratios []float64) *UnitSystemBuilder {
	b.names = names
	b.ratios = ratios
	return b
}

func (b *UnitSystemBuilder) Build() (models.UnitSystem, error) {
	return models.NewUnitSystem(b.category, b.names, b.ratios)
}

// MustBuild panics if the table is invalid.
func (b *UnitSystemBuilder) MustBuild() models.UnitSystem {
	return models.MustUnitSystem(b.category, b.names, b.ratios)
}
