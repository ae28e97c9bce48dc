// Package sanitize filters keystroke input for the numeric value field.
//
// The filter is lenient: it keeps digits and '.' and nothing else, so text
// such as "1.2.3" can still be typed. Rejecting that is left to the parser
// in package convert.
package sanitize

import (
	"strings"

	"github.com/akyairhashvil/unitconv/internal/util"
)

const validChars = "0123456789."

// Valid reports whether r may appear in the value field.
func Valid(r rune) bool {
	return strings.ContainsRune(validChars, r)
}

// FilterInsertion returns the part of inserted that may be inserted into
// existing at offset.
func FilterInsertion(existing string, offset int, inserted string) string {
	return strip(inserted)
}

// FilterReplacement returns the part of inserted that may replace
// existing[offset:offset+length].
func FilterReplacement(existing string, offset, length int, inserted string) string {
	return strip(inserted)
}

// FilterRemoval reports whether a pure deletion is allowed. It always is.
func FilterRemoval(existing string, offset, length int) bool {
	return true
}

// Insert applies a filtered insertion at a rune offset.
func Insert(existing string, offset int, inserted string) string {
	return Replace(existing, offset, 0, inserted)
}

// Replace applies a filtered replacement of length runes at a rune offset.
// Out-of-range offsets and lengths are clamped to the text.
func Replace(existing string, offset, length int, inserted string) string {
	runes := []rune(existing)
	start := util.Clamp(offset, 0, len(runes))
	end := util.Clamp(start+util.Clamp(length, 0, len(runes)), start, len(runes))
	accepted := FilterReplacement(existing, start, end-start, inserted)

	var b strings.Builder
	b.Grow(len(existing) + len(accepted))
	b.WriteString(string(runes[:start]))
	b.WriteString(accepted)
	b.WriteString(string(runes[end:]))
	return b.String()
}

// Remove deletes length runes at a rune offset.
func Remove(existing string, offset, length int) string {
	return Replace(existing, offset, length, "")
}

func strip(s string) string {
	return strings.Map(func(r rune) rune {
		if Valid(r) {
			return r
		}
		return -1
	}, s)
}
