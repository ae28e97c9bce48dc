package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/unitconv/internal/config"
	"github.com/akyairhashvil/unitconv/internal/convert"
	"github.com/akyairhashvil/unitconv/internal/util"
	"github.com/go-pdf/fpdf"
)

// ResolvePath places a bare file name in the reports directory.
func ResolvePath(name string) string {
	if name == "" {
		name = "conversion.pdf"
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(util.ReportsDir(config.AppName), name)
}

// WritePDF writes t as a one-page PDF at path, creating parent directories.
func WritePDF(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Unit Conversion: "+t.Title())
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Unit", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Value", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Ratio", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, r := range t.Rows {
		pdf.CellFormat(70, 8, r.Unit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, r.Display, "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, convert.FormatForDisplay(r.Ratio), "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
