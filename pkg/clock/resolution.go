package clock

import (
	"math"
	"time"
)

// DefaultResolutionSamples is the number of reading pairs Resolution takes
// when asked for zero or fewer samples
const DefaultResolutionSamples = 10_000

// Resolution estimates the smallest positive step of src by taking pairs of
// back-to-back readings and keeping the smallest non-zero difference. It
// returns 0 when the source is unavailable or never advanced. CPU time clocks
// only advance while the caller burns CPU, which this loop does.
func Resolution(src Source, samples int) time.Duration {
	if !src.Available() {
		return 0
	}
	if samples <= 0 {
		samples = DefaultResolutionSamples
	}

	best := int64(math.MaxInt64)
	for i := 0; i < samples; i++ {
		t1 := src.Now()
		t2 := src.Now()
		for t2.Valid() && t2.Nanos() == t1.Nanos() && i < samples {
			t2 = src.Now()
			i++
		}
		if !t1.Valid() || !t2.Valid() {
			continue
		}
		if diff := t2.Nanos() - t1.Nanos(); diff > 0 && diff < best {
			best = diff
		}
	}

	if best == math.MaxInt64 {
		return 0
	}
	return time.Duration(best)
}
