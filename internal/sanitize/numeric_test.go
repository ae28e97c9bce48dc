package sanitize

import "testing"

func TestFilterInsertionStripsInvalid(t *testing.T) {
	if got := FilterInsertion("12", 2, "a3.b"); got != "3." {
		t.Fatalf("FilterInsertion() = %q, want %q", got, "3.")
	}
}

func TestFilterInsertionKeepsOrder(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"abc":        "",
		"9.8.7":      "9.8.7",
		"-1e5":       "15",
		"1,000.50":   "1000.50",
		" 4 2 ":      "42",
		"٣":          "",
		"3½":         "3",
		"0123456789": "0123456789",
	}
	for in, want := range tests {
		if got := FilterInsertion("", 0, in); got != want {
			t.Fatalf("FilterInsertion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterReplacement(t *testing.T) {
	if got := FilterReplacement("123", 0, 3, "x4y.5z"); got != "4.5" {
		t.Fatalf("FilterReplacement() = %q, want %q", got, "4.5")
	}
}

func TestFilterRemovalPassesThrough(t *testing.T) {
	if !FilterRemoval("1.5", 0, 3) {
		t.Fatalf("expected deletions to pass through")
	}
}

func TestInsertReplaceRemove(t *testing.T) {
	if got := Insert("12", 1, "x.5"); got != "1.52" {
		t.Fatalf("Insert() = %q, want %q", got, "1.52")
	}
	if got := Insert("12", 99, "3"); got != "123" {
		t.Fatalf("Insert() past end = %q, want %q", got, "123")
	}
	if got := Insert("12", -4, "3"); got != "312" {
		t.Fatalf("Insert() before start = %q, want %q", got, "312")
	}
	if got := Replace("1234", 1, 2, "ab9"); got != "194" {
		t.Fatalf("Replace() = %q, want %q", got, "194")
	}
	if got := Replace("1234", 2, 50, "."); got != "12." {
		t.Fatalf("Replace() overlong = %q, want %q", got, "12.")
	}
	if got := Remove("1.2.3", 1, 2); got != "1.3" {
		t.Fatalf("Remove() = %q, want %q", got, "1.3")
	}
	if got := Insert("1.2", 3, ".3"); got != "1.2.3" {
		t.Fatalf("expected multiple dots to be accepted, got %q", got)
	}
}

func TestValid(t *testing.T) {
	for _, r := range "0123456789." {
		if !Valid(r) {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	for _, r := range "-+eE, a" {
		if Valid(r) {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}
