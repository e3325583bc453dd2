package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainString(t *testing.T) {
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "process", Process.String())
	assert.Equal(t, "thread", Thread.String())
	assert.Equal(t, "domain(7)", Domain(7).String())
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDomain("  Monotonic ")
	require.NoError(t, err)
	assert.Equal(t, Wall, got)

	_, err = ParseDomain("gpu")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestReadingSub(t *testing.T) {
	start := NewReading(Wall, 1_000)
	stop := NewReading(Wall, 1_500_001_000)

	assert.InDelta(t, 1.5, stop.Sub(start), 1e-12)
	assert.True(t, math.IsNaN(stop.Sub(NewReading(Process, 0))), "domains are not comparable")
	assert.True(t, math.IsNaN(stop.Sub(Unavailable(Wall))))
	assert.True(t, math.IsNaN(Unavailable(Wall).Sub(start)))
	assert.False(t, Reading{}.Valid())
}

func TestForDomain(t *testing.T) {
	for _, d := range Domains() {
		src, err := ForDomain(d)
		require.NoError(t, err)
		assert.Equal(t, d, src.Domain())
	}

	_, err := ForDomain(Domain(42))
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestMonotonicNonDecreasing(t *testing.T) {
	for _, src := range []Source{Monotonic(), GoMonotonic()} {
		require.True(t, src.Available())
		prev := src.Now()
		require.True(t, prev.Valid())
		for i := 0; i < 1000; i++ {
			next := src.Now()
			require.True(t, next.Valid())
			assert.GreaterOrEqual(t, next.Nanos(), prev.Nanos())
			prev = next
		}
	}
}

func TestWallTracksSleep(t *testing.T) {
	src := Monotonic()
	start := src.Now()
	time.Sleep(20 * time.Millisecond)
	elapsed := src.Now().Sub(start)

	assert.GreaterOrEqual(t, elapsed, 0.020)
	assert.Less(t, elapsed, 2.0)
}

func TestProcessTimesAdvancesWithWork(t *testing.T) {
	src := ProcessTimes()
	if !src.Available() {
		t.Skip("process times not readable on this host")
	}

	start := src.Now()
	require.True(t, start.Valid())
	spin(200 * time.Millisecond)
	elapsed := src.Now().Sub(start)

	assert.Greater(t, elapsed, 0.0)
	assert.Less(t, elapsed, 10.0)
}

func TestUnavailableClock(t *testing.T) {
	src := unavailableClock{domain: Thread}
	assert.False(t, src.Available())
	assert.False(t, src.Now().Valid())
	assert.Equal(t, time.Duration(0), Resolution(src, 10))
}

func TestResolution(t *testing.T) {
	res := Resolution(Monotonic(), 1000)
	assert.Greater(t, res, time.Duration(0))
	assert.Less(t, res, 20*time.Millisecond)
}

// spin burns CPU on the calling goroutine for at least d of wall time
func spin(d time.Duration) {
	deadline := time.Now().Add(d)
	x := 0
	for time.Now().Before(deadline) {
		x++
	}
	_ = x
}
