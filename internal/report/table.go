// Package report renders one value converted into every unit of a category.
package report

import (
	"fmt"

	"github.com/akyairhashvil/unitconv/internal/convert"
	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Row struct {
	Unit    string
	Ratio   float64
	Value   float64
	Display string
}

// Table is a conversion of Input (in unit From) to each unit of Category.
type Table struct {
	Category models.Category
	From     string
	Input    string
	Rows     []Row
}

// Build converts text from unit in to every unit of sys.
func Build(sys models.UnitSystem, in int, text string) (Table, error) {
	from, ok := sys.Unit(in)
	if !ok {
		return Table{}, &convert.Error{Op: "input unit", Index: in, Err: convert.ErrIndexOutOfRange}
	}
	value, err := convert.Parse(text)
	if err != nil {
		return Table{}, err
	}
	t := Table{Category: sys.Category(), From: from.Name, Input: text, Rows: make([]Row, 0, sys.Len())}
	for out := 0; out < sys.Len(); out++ {
		v, err := convert.Convert(sys, in, out, value)
		if err != nil {
			return Table{}, fmt.Errorf("%s: %w", sys.Units()[out], err)
		}
		u, _ := sys.Unit(out)
		t.Rows = append(t.Rows, Row{Unit: u.Name, Ratio: u.Ratio, Value: v, Display: convert.FormatForDisplay(v)})
	}
	return t, nil
}

func (t Table) Title() string {
	return fmt.Sprintf("%s: %s %s", t.Category, t.Input, t.From)
}

// Text renders the table for a terminal.
func (t Table) Text() string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, []string{r.Unit, r.Display})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Unit", "Value").
		Rows(rows...)
	return t.Title() + "\n" + tbl.String()
}
