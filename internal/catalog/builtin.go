package catalog

import "github.com/akyairhashvil/unitconv/internal/models"

// Ratios are multipliers from the reference unit (index 0). The temperature
// table is a linear approximation of affine scales and is kept as shipped.
var (
	lengthUnits = []string{
		"Kilometer", "Meter", "Centimeter", "Millimeter", "Micrometer", "Nanometer",
		"Mile", "Yard", "Foot", "Inch", "Nautical Mile", "Light Year",
	}
	lengthRatios = []float64{
		1, 1000, 100000, 1e+6, 1e+9, 1e+12,
		0.621371, 1093.61, 3280.84, 39370.1, 0.539957, 1.057e-13,
	}

	timeUnits = []string{
		"Second", "Millisecond", "Microsecond", "Nanosecond", "Picosecond",
		"Minute", "Hour", "Day", "Week", "Month", "Year",
	}
	timeRatios = []float64{
		1, 1000, 1e+6, 1e+9, 1e+12,
		0.0166667, 0.000277778, 1.1574083333e-5, 1.653440476142857e-6,
		3.80517391202858972e-7, 3.170981735068493655e-8,
	}

	temperatureUnits  = []string{"Celsius", "Kelvin", "Fahrenheit"}
	temperatureRatios = []float64{1, 274.15, 33.8}
)

// Length returns the built-in length table (reference: Kilometer).
func Length() models.UnitSystem {
	return models.MustUnitSystem(models.CategoryLength, lengthUnits, lengthRatios)
}

// Time returns the built-in time table (reference: Second).
func Time() models.UnitSystem {
	return models.MustUnitSystem(models.CategoryTime, timeUnits, timeRatios)
}

// Temperature returns the built-in temperature table (reference: Celsius).
func Temperature() models.UnitSystem {
	return models.MustUnitSystem(models.CategoryTemperature, temperatureUnits, temperatureRatios)
}
