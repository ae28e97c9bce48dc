package convert

import (
	"math"
	"strconv"
	"strings"
)

// FormatForDisplay renders a conversion result for the output field.
// Integral values print without a decimal point; very large or very small
// magnitudes switch to exponent form.
func FormatForDisplay(v float64) string {
	abs := math.Abs(v)
	var s string
	if abs == 0 || (abs >= 1e-4 && abs < 1e21) {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strings.TrimSuffix(s, ".0")
}
