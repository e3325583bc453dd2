//go:build linux

package clock

import (
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxBackendsAvailable(t *testing.T) {
	for _, src := range []Source{Monotonic(), ProcessCPU(), ThreadCPU()} {
		assert.True(t, src.Available(), src.Domain().String())
		assert.True(t, src.Now().Valid(), src.Domain().String())
	}
}

func TestThreadCPUCountsOnlyThisThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	src := ThreadCPU()
	start := src.Now()
	time.Sleep(50 * time.Millisecond)
	idle := src.Now().Sub(start)

	start = src.Now()
	spin(50 * time.Millisecond)
	busy := src.Now().Sub(start)

	require.False(t, math.IsNaN(busy), "thread clock must be readable on linux")
	assert.Less(t, idle, 0.040, "sleeping does not consume thread CPU time")
	assert.Greater(t, busy, 0.0)
	assert.Greater(t, busy, idle)
}

func TestProcessCPUNonDecreasing(t *testing.T) {
	src := ProcessCPU()
	prev := src.Now()
	for i := 0; i < 1000; i++ {
		next := src.Now()
		assert.GreaterOrEqual(t, next.Nanos(), prev.Nanos())
		prev = next
	}
}
