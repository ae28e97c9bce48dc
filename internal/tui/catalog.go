package tui

import "github.com/akyairhashvil/unitconv/internal/models"

// Catalog supplies the unit systems the converter can switch between.
//
//go:generate mockgen -source=catalog.go -destination=mock_catalog_test.go -package=tui
type Catalog interface {
	Categories() []models.Category
	System(c models.Category) (models.UnitSystem, error)
}
