package clock

import "time"

// goEpoch is an arbitrary t0 for the runtime monotonic clock
var goEpoch = time.Now()

type goClock struct{}

// GoMonotonic returns a wall clock backed by the monotonic reading that
// time.Now carries. It works on every platform Go supports.
func GoMonotonic() Source {
	return goClock{}
}

func (goClock) Domain() Domain  { return Wall }
func (goClock) Available() bool { return true }

func (goClock) Now() Reading {
	return NewReading(Wall, time.Since(goEpoch).Nanoseconds())
}
