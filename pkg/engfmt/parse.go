package engfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse for text that is not engineering notation
var ErrSyntax = errors.New("invalid engineering notation")

// Parse reads back a value rendered by Format or FormatWith. Padding is ignored.
// The exponent, when present, must be a multiple of three.
func Parse(s string) (float64, error) {
	text := strings.TrimSpace(s)
	switch text {
	case "NaN", "+Inf", "-Inf":
		v, _ := strconv.ParseFloat(text, 64)
		return v, nil
	case "":
		return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}

	mantissa, exponent, hasExponent := strings.Cut(text, "e")
	if strings.ContainsAny(mantissa, "eEpPxX_") || strings.EqualFold(mantissa, "inf") || strings.EqualFold(mantissa, "nan") {
		return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	if _, err := strconv.ParseFloat(mantissa, 64); err != nil {
		return 0, fmt.Errorf("parse %q: mantissa: %w", s, ErrSyntax)
	}

	if hasExponent {
		exp, err := strconv.Atoi(exponent)
		if err != nil {
			return 0, fmt.Errorf("parse %q: exponent: %w", s, ErrSyntax)
		}
		if exp%3 != 0 {
			return 0, fmt.Errorf("parse %q: exponent %d is not a multiple of 3: %w", s, exp, ErrSyntax)
		}
	}

	// strconv rounds the whole literal once, which is closer than mantissa*10^exp
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	return v, nil
}
