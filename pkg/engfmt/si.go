package engfmt

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatSI renders value with an SI prefix instead of an exponent, e.g.
// FormatSI(0.0123, 3, "s") is "12.3 ms". precision is the significant digit
// budget as in Format; trailing zeros are dropped. Values below the default
// floor render as zero.
func FormatSI(value float64, precision int, unit string) string {
	if precision < MinPrecision {
		precision = MinPrecision
	}
	switch {
	case math.IsNaN(value):
		return "NaN " + unit
	case math.IsInf(value, 1):
		return "+Inf " + unit
	case math.IsInf(value, -1):
		return "-Inf " + unit
	case math.Abs(value) < DefaultFloor:
		value = 0
	}

	mantissa, _ := humanize.ComputeSI(value)
	decimals := precision
	if mantissa != 0 {
		decimals -= decade(math.Abs(mantissa))
	}
	if decimals < 0 {
		decimals = 0
	}
	return humanize.SIWithDigits(value, decimals, unit)
}
