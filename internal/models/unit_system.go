package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category names one measurement domain (length, time, ...).
type Category string

const (
	CategoryLength      Category = "length"
	CategoryTime        Category = "time"
	CategoryTemperature Category = "temperature"
)

// ParseCategory normalises user input into a Category.
func ParseCategory(s string) Category {
	return Category(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the display label, e.g. "Length".
func (c Category) String() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	ErrUnitCountMismatch = errors.New("unit names and ratios differ in length")
	ErrTooFewUnits       = errors.New("a unit system needs at least two units")
	ErrInvalidRatio      = errors.New("ratio must be positive and finite")
	ErrEmptyUnitName     = errors.New("unit name is empty")
	ErrEmptyCategory     = errors.New("category is empty")
)

// DefinitionError reports a malformed unit table.
type DefinitionError struct {
	Category Category
	Index    int // -1 when the error is not tied to one unit
	Err      error
}

func (e *DefinitionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index >= 0 {
		return fmt.Sprintf("unit system %q: unit %d: %v", string(e.Category), e.Index, e.Err)
	}
	return fmt.Sprintf("unit system %q: %v", string(e.Category), e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// Unit is one entry of a UnitSystem.
// Ratio is the multiplier from the reference unit: ref * Ratio = value in this unit.
type Unit struct {
	Name  string
	Ratio float64
}

// UnitSystem is an immutable table of units for one category.
// Index 0 is the reference unit.
type UnitSystem struct {
	category Category
	units    []Unit
}

// NewUnitSystem validates and copies a unit table.
func NewUnitSystem(category Category, names []string, ratios []float64) (UnitSystem, error) {
	if category == "" {
		return UnitSystem{}, &DefinitionError{Category: category, Index: -1, Err: ErrEmptyCategory}
	}
	if len(names) != len(ratios) {
		return UnitSystem{}, &DefinitionError{
			Category: category,
			Index:    -1,
			Err:      fmt.Errorf("%w (%d names, %d ratios)", ErrUnitCountMismatch, len(names), len(ratios)),
		}
	}
	if len(names) < 2 {
		return UnitSystem{}, &DefinitionError{Category: category, Index: -1, Err: ErrTooFewUnits}
	}
	units := make([]Unit, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return UnitSystem{}, &DefinitionError{Category: category, Index: i, Err: ErrEmptyUnitName}
		}
		r := ratios[i]
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return UnitSystem{}, &DefinitionError{Category: category, Index: i, Err: fmt.Errorf("%w: %v", ErrInvalidRatio, r)}
		}
		units[i] = Unit{Name: name, Ratio: r}
	}
	return UnitSystem{category: category, units: units}, nil
}

// MustUnitSystem is NewUnitSystem for static tables; it panics on a bad table.
func MustUnitSystem(category Category, names []string, ratios []float64) UnitSystem {
	s, err := NewUnitSystem(category, names, ratios)
	if err != nil {
		panic(err)
	}
	return s
}

func (s UnitSystem) Category() Category { return s.category }

func (s UnitSystem) Len() int { return len(s.units) }

// Units returns the unit names in display order.
func (s UnitSystem) Units() []string {
	out := make([]string, len(s.units))
	for i, u := range s.units {
		out[i] = u.Name
	}
	return out
}

// Ratios returns the ratio-to-reference table, parallel to Units.
func (s UnitSystem) Ratios() []float64 {
	out := make([]float64, len(s.units))
	for i, u := range s.units {
		out[i] = u.Ratio
	}
	return out
}

func (s UnitSystem) Unit(i int) (Unit, bool) {
	if i < 0 || i >= len(s.units) {
		return Unit{}, false
	}
	return s.units[i], true
}

// Ratio returns the ratio of unit i. Callers must range-check i.
func (s UnitSystem) Ratio(i int) float64 {
	return s.units[i].Ratio
}

// Index finds a unit by name, ignoring case and surrounding spaces.
func (s UnitSystem) Index(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, u := range s.units {
		if strings.EqualFold(u.Name, name) {
			return i, true
		}
	}
	return -1, false
}
