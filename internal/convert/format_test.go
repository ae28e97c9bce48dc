package convert

import "testing"

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5.0, "5"},
		{5.25, "5.25"},
		{2000, "2000"},
		{0, "0"},
		{-3.5, "-3.5"},
		{1000000, "1000000"},
		{1e12, "1000000000000"},
		{0.001, "0.001"},
		{1.057e-13, "1.057e-13"},
		{2.5e21, "2.5e+21"},
	}
	for _, tt := range tests {
		if got := FormatForDisplay(tt.in); got != tt.want {
			t.Fatalf("FormatForDisplay(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
