// Package catalog holds the unit systems offered to the user, keyed by
// category, in menu order.
package catalog

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/unitconv/internal/models"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrDuplicateCategory = errors.New("duplicate category")
)

// Catalog is an immutable, ordered set of unit systems.
type Catalog struct {
	order   []models.Category
	systems map[models.Category]models.UnitSystem
}

// New builds a catalog; categories keep the order they are given in.
func New(systems ...models.UnitSystem) (*Catalog, error) {
	c := &Catalog{systems: make(map[models.Category]models.UnitSystem, len(systems))}
	for _, s := range systems {
		cat := s.Category()
		if _, ok := c.systems[cat]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat)
		}
		c.order = append(c.order, cat)
		c.systems[cat] = s
	}
	return c, nil
}

// Default returns the built-in categories in menu order.
func Default() *Catalog {
	c, err := New(Length(), Temperature(), Time())
	if err != nil {
		panic(err)
	}
	return c
}

// With returns a new catalog with extra systems appended. A system whose
// category already exists replaces it in place.
func (c *Catalog) With(systems ...models.UnitSystem) (*Catalog, error) {
	seen := make(map[models.Category]bool, len(systems))
	for _, s := range systems {
		if seen[s.Category()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, s.Category())
		}
		seen[s.Category()] = true
	}
	next := &Catalog{
		order:   append([]models.Category(nil), c.order...),
		systems: make(map[models.Category]models.UnitSystem, len(c.systems)+len(systems)),
	}
	for k, v := range c.systems {
		next.systems[k] = v
	}
	for _, s := range systems {
		if _, ok := next.systems[s.Category()]; !ok {
			next.order = append(next.order, s.Category())
		}
		next.systems[s.Category()] = s
	}
	return next, nil
}

// Categories lists the categories in menu order.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.order...)
}

func (c *Catalog) System(cat models.Category) (models.UnitSystem, error) {
	s, ok := c.systems[cat]
	if !ok {
		return models.UnitSystem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
	}
	return s, nil
}

func (c *Catalog) Has(cat models.Category) bool {
	_, ok := c.systems[cat]
	return ok
}
