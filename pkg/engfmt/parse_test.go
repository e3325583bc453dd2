package engfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{" 1.235e3 ", 1235},
		{"12.30e-3", 0.0123},
		{" 0.000   ", 0},
		{"-12.30e-3", -0.0123},
		{"500.0e-9", 5e-7},
		{"42", 42},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, math.Abs(tt.want)*1e-12, tt.in)
	}

	v, err := Parse("   NaN   ")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = Parse("-Inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1.0e2", "1.0e", "1.0E3", "1e3e3", "0x1p3", "inf"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, "Parse(%q)", in)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{1234.5, 0.0123, 9.87654e-7, 3.3e10, -42.42, 1.5, 999.4, 999.96, 1e-7, 1e-24}

	for _, precision := range []int{3, 4, 6} {
		for _, v := range values {
			for _, fixed := range []bool{true, false} {
				s := Format(v, precision, fixed)
				got, err := Parse(s)
				require.NoError(t, err, s)

				// precision+1 significant digits survive, so the relative
				// error is at most half a unit in the last printed place
				assert.InEpsilon(t, v, got, 0.5*math.Pow10(-precision)*1.000001, "round trip of %g via %q", v, s)
			}
		}
	}
}
