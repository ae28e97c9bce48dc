package main

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/unitconv/internal/convert"
	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/akyairhashvil/unitconv/internal/report"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// resolveUnit accepts a unit name (any case) or a numeric index.
// Numeric indexes are not range-checked here; the engine reports them.
func resolveUnit(sys models.UnitSystem, s string) (int, error) {
	if i, ok := sys.Index(s); ok {
		return i, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown %s unit %q", sys.Category(), s)
	}
	return i, nil
}

func newConvertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert one value and print the result",
		Example: "  unitconv convert 2 --category length --from kilometer --to meter\n" +
			"  unitconv convert 90 --category time --from minute --to hour\n" +
			"  unitconv convert -40 --category temperature --from celsius --to fahrenheit",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system("")
			if err != nil {
				return err
			}
			in, err := resolveUnit(sys, from)
			if err != nil {
				return err
			}
			out, err := resolveUnit(sys, to)
			if err != nil {
				return err
			}
			v, err := convert.ConvertText(sys, in, out, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert.FormatForDisplay(v))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0", "input unit (name or index)")
	cmd.Flags().StringVar(&to, "to", "1", "output unit (name or index)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [CATEGORY]",
		Short: "List categories, or the units of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, c := range a.catalog.Categories() {
					sys, err := a.catalog.System(c)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d units\n", string(c), sys.Len())
				}
				return nil
			}
			sys, err := a.system(args[0])
			if err != nil {
				return err
			}
			rows := make([][]string, 0, sys.Len())
			for i, u := range sys.Units() {
				rows = append(rows, []string{strconv.Itoa(i), u, convert.FormatForDisplay(sys.Ratio(i))})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "Unit", "Ratio").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	var from, pdfPath string
	cmd := &cobra.Command{
		Use:   "table VALUE",
		Short: "Show a value converted into every unit of the category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.system("")
			if err != nil {
				return err
			}
			in, err := resolveUnit(sys, from)
			if err != nil {
				return err
			}
			t, err := report.Build(sys, in, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Text())
			if pdfPath == "" {
				return nil
			}
			path := report.ResolvePath(pdfPath)
			if err := report.WritePDF(t, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0", "input unit (name or index)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the table to this PDF file")
	return cmd
}
