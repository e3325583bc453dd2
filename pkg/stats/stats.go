// Package stats provides reducers over ordered sample sequences: sum, mean,
// min, max and sample standard deviation. Empty and undersized inputs are
// reported through ErrEmpty and ErrInsufficientData instead of producing
// garbage values.
package stats

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInsufficientData is returned when a reducer needs more samples than it was given.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEmpty is returned for an empty sample sequence. It wraps ErrInsufficientData.
	ErrEmpty = fmt.Errorf("empty sample sequence: %w", ErrInsufficientData)
)

// Number is any integer or floating point sample type
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the first element plus the accumulation of the rest
func Sum[T Number](xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	result := xs[0]
	for _, x := range xs[1:] {
		result += x
	}
	return result, nil
}

// DSum converts every element to float64 before summing. An empty slice sums to 0.
func DSum[T Number](xs []T) float64 {
	var total float64
	for _, x := range xs {
		total += float64(x)
	}
	return total
}

// Mean returns the arithmetic mean
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), ErrEmpty
	}
	return DSum(xs) / float64(len(xs)), nil
}

// Max returns the largest element.
// NaN samples are ignored unless every sample is NaN.
func Max[T Number](xs []T) (T, error) {
	return extremum(xs, func(a, b T) bool { return a > b })
}

// Min returns the smallest element.
// NaN samples are ignored unless every sample is NaN.
func Min[T Number](xs []T) (T, error) {
	return extremum(xs, func(a, b T) bool { return a < b })
}

func extremum[T Number](xs []T, better func(a, b T) bool) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	best := xs[0]
	for _, x := range xs[1:] {
		if isNaN(x) {
			continue
		}
		if isNaN(best) || better(x, best) {
			best = x
		}
	}
	return best, nil
}

// isNaN works for every Number; only a float NaN is unequal to itself.
func isNaN[T Number](x T) bool {
	return x != x
}

// Stdev returns the Bessel-corrected sample standard deviation:
// sqrt(sum((x - mean)^2) / (n - 1)).
//
// A single sample has no spread to estimate, so n == 1 returns
// ErrInsufficientData and n == 0 returns ErrEmpty.
func Stdev[T Number](xs []T) (float64, error) {
	switch len(xs) {
	case 0:
		return math.NaN(), ErrEmpty
	case 1:
		return math.NaN(), fmt.Errorf("stdev needs at least 2 samples, got 1: %w", ErrInsufficientData)
	}

	if constant(xs) {
		return 0, nil
	}

	mean, _ := Mean(xs)

	// Deviations are divided by the largest one before squaring so tiny but
	// distinct samples do not underflow to a zero spread.
	var scale float64
	for _, x := range xs {
		if d := math.Abs(float64(x) - mean); d > scale || math.IsNaN(d) {
			scale = d
		}
	}
	if scale == 0 {
		return 0, nil
	}

	var sumSquaredDiff float64
	for _, x := range xs {
		diff := (float64(x) - mean) / scale
		sumSquaredDiff += diff * diff
	}
	return scale * math.Sqrt(sumSquaredDiff/float64(len(xs)-1)), nil
}

// constant reports whether every sample equals the first one. Rounding in the
// mean would otherwise leave a tiny non-zero spread for constant input.
func constant[T Number](xs []T) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// Summary holds the descriptive statistics of one sample sequence
type Summary struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	Stdev float64 // NaN when Count < 2
}

// Summarize computes every statistic at once. A single sample is still a valid
// summary: its Stdev is NaN and no error is returned.
func Summarize[T Number](xs []T) (Summary, error) {
	if len(xs) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Min: nan, Max: nan, Stdev: nan}, ErrEmpty
	}

	mean, _ := Mean(xs)
	lo, _ := Min(xs)
	hi, _ := Max(xs)
	sd, err := Stdev(xs)
	if err != nil && !errors.Is(err, ErrInsufficientData) {
		return Summary{}, err
	}

	return Summary{
		Count: len(xs),
		Mean:  mean,
		Min:   float64(lo),
		Max:   float64(hi),
		Stdev: sd,
	}, nil
}
