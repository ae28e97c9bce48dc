// Package convert maps a value between two units of a models.UnitSystem
// by way of the system's reference unit (index 0).
package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/unitconv/internal/models"
)

// Request is a single conversion against the active unit system.
type Request struct {
	System models.UnitSystem
	In     int
	Out    int
	Value  float64
}

// Do runs the request through Convert.
func (r Request) Do() (float64, error) {
	return Convert(r.System, r.In, r.Out, r.Value)
}

// Convert returns value (expressed in unit in) expressed in unit out.
func Convert(sys models.UnitSystem, in, out int, value float64) (float64, error) {
	if in < 0 || in >= sys.Len() {
		return 0, &Error{Op: "input unit", Index: in, Err: ErrIndexOutOfRange}
	}
	if out < 0 || out >= sys.Len() {
		return 0, &Error{Op: "output unit", Index: out, Err: ErrIndexOutOfRange}
	}
	ref := value / sys.Ratio(in)
	if !finite(ref) {
		return 0, &Error{Op: "convert to reference", Err: ErrConversion}
	}
	result := ref * sys.Ratio(out)
	if !finite(result) {
		return 0, &Error{Op: "convert from reference", Err: ErrConversion}
	}
	return result, nil
}

// ConvertText parses text as a decimal number and converts it.
func ConvertText(sys models.UnitSystem, in, out int, text string) (float64, error) {
	value, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Convert(sys, in, out, value)
}

// Parse reads a real number, ignoring surrounding whitespace. Go digit
// separators ("1_000") are not accepted.
func Parse(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || strings.ContainsRune(trimmed, '_') {
		return 0, &Error{Op: "parse", Input: text, Err: ErrParse}
	}
	return value, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
