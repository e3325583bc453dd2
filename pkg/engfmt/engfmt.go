// Package engfmt renders floating point values in engineering notation: a
// fixed-point mantissa followed by an exponent that is always a multiple of
// three (…, e-6, e-3, none, e3, e6, …), mirroring SI magnitude prefixes.
//
// The number of digits after the decimal point shrinks as the mantissa grows,
// so every rendered value carries the same number of significant digits:
//
//	Format(0.0123, 3, false)  // "12.30e-3"
//	Format(1234.6, 3, false)  // "1.235e3"
//	Format(0, 3, false)       // "0.000"
//
// Fixed-width output pads every value to the same column width so several
// statistics line up when printed one after another.
package engfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinPrecision is the smallest precision honoured. Lower requests are raised to it.
	MinPrecision = 3

	// DefaultPrecision is the precision used by StatString style output.
	DefaultPrecision = 3

	// DefaultFloor is the magnitude below which a value is rendered as zero.
	DefaultFloor = 1e-200

	// minFloor is the smallest floor Options.Floor may select
	minFloor = 1e-300
)

// Options controls rendering
type Options struct {
	// Precision is the digit budget. Values below MinPrecision are clamped.
	Precision int

	// FixedWidth right-aligns the mantissa in Precision+3 columns and pads the
	// exponent to two columns (three blanks when there is no exponent).
	FixedWidth bool

	// Floor is the saturation floor: |value| < Floor renders as zero with no
	// exponent. Zero or negative selects DefaultFloor; values below 1e-300
	// are raised to 1e-300.
	Floor float64
}

// DefaultOptions returns the options used by Format when no overrides are given
func DefaultOptions() Options {
	return Options{
		Precision:  DefaultPrecision,
		FixedWidth: true,
		Floor:      DefaultFloor,
	}
}

// Format renders value with the given precision using the default saturation floor
func Format(value float64, precision int, fixedWidth bool) string {
	return FormatWith(value, Options{
		Precision:  precision,
		FixedWidth: fixedWidth,
		Floor:      DefaultFloor,
	})
}

// FormatWith renders value according to opts
func FormatWith(value float64, opts Options) string {
	precision := opts.Precision
	if precision < MinPrecision {
		precision = MinPrecision
	}
	floor := opts.Floor
	if floor <= 0 {
		floor = DefaultFloor
	} else if floor < minFloor {
		floor = minFloor
	}
	width := precision + 3

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return formatSpecial(value, width, opts.FixedWidth)
	}

	var body string
	exponent := 0
	if math.Abs(value) < floor {
		body = strconv.FormatFloat(0, 'f', precision, 64)
	} else {
		digits, d := significand(math.Abs(value), precision)
		exponent = 3 * int(math.Floor(float64(d)/3))
		whole := d - exponent
		body = digits[:whole+1] + "." + digits[whole+1:]
		if value < 0 {
			body = "-" + body
		}
	}

	if opts.FixedWidth {
		if exponent == 0 {
			return fmt.Sprintf("%*s   ", width, body)
		}
		return fmt.Sprintf("%*se%-2d", width, body, exponent)
	}

	if exponent == 0 {
		return body
	}
	return fmt.Sprintf("%se%d", body, exponent)
}

func formatSpecial(value float64, width int, fixedWidth bool) string {
	var s string
	switch {
	case math.IsNaN(value):
		s = "NaN"
	case value > 0:
		s = "+Inf"
	default:
		s = "-Inf"
	}
	if fixedWidth {
		return fmt.Sprintf("%*s   ", width, s)
	}
	return s
}

// significand rounds x > 0 to precision+1 significant digits and returns
// them without the decimal point, along with the decimal exponent of the
// rounded value. Rounding happens before the exponent is chosen, so 999.96
// becomes 1.000e3 rather than a mantissa with an extra digit.
func significand(x float64, precision int) (string, int) {
	mantissa, exp := splitExponent(strconv.FormatFloat(x, 'e', precision, 64))
	return strings.Replace(mantissa, ".", "", 1), exp
}

// decade returns floor(log10(x)) for x > 0, taken from the decimal exponent
// of the shortest representation of x.
func decade(x float64) int {
	_, exp := splitExponent(strconv.FormatFloat(x, 'e', -1, 64))
	return exp
}

func splitExponent(s string) (string, int) {
	mantissa, exp, _ := strings.Cut(s, "e")
	n, _ := strconv.Atoi(exp)
	return mantissa, n
}
