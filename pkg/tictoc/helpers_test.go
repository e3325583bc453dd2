package tictoc

import (
	"time"

	"github.com/psantana5/tictoc/pkg/clock"
)

// scriptedClock replays fixed nanosecond readings, then keeps returning the last one
type scriptedClock struct {
	domain   clock.Domain
	readings []int64
	next     int
}

func (c *scriptedClock) Domain() clock.Domain { return c.domain }
func (c *scriptedClock) Available() bool      { return true }

func (c *scriptedClock) Now() clock.Reading {
	i := c.next
	if i >= len(c.readings) {
		i = len(c.readings) - 1
	} else {
		c.next++
	}
	return clock.NewReading(c.domain, c.readings[i])
}

type deadClock struct {
	domain clock.Domain
}

func (c deadClock) Domain() clock.Domain { return c.domain }
func (c deadClock) Available() bool      { return false }
func (c deadClock) Now() clock.Reading   { return clock.Unavailable(c.domain) }

// busyWait spins until at least d of wall time has passed
func busyWait(d time.Duration) {
	deadline := time.Now().Add(d)
	n := 0
	for time.Now().Before(deadline) {
		n++
	}
	_ = n
}

func ms(n int64) int64 {
	return n * int64(time.Millisecond)
}
