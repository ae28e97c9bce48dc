package config

// Layout constants.
const (
	// MinColumnWidth is the minimum width for a unit list column.
	MinColumnWidth = 12

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ValueFieldWidth is the width of the value and result fields.
	ValueFieldWidth = 24

	// TruncationSuffix appended to truncated unit names.
	TruncationSuffix = "…"
)

// Display limits.
const (
	// MaxVisibleUnits limits units shown per list before scrolling.
	MaxVisibleUnits = 12
)

// Input constraints.
const (
	// MaxValueLength is the maximum length of the value field.
	MaxValueLength = 64
)
