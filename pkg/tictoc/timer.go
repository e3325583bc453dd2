// Package tictoc measures elapsed time in one clock domain (wall, process CPU
// or thread CPU) and keeps a log of measurements to summarise.
//
// A Timer is a start/stop pair over one clock.Source. A LoggingTimer wraps a
// Timer, appends each measured duration to its sample log and reports mean,
// min, max and standard deviation in engineering notation:
//
//	tt := tictoc.NewWall("decode")
//	for _, frame := range frames {
//		tt.Tic()
//		decode(frame)
//		tt.Toc()
//	}
//	fmt.Println(tt.StatString())
//
// Timers are not safe for concurrent use.
package tictoc

import (
	"errors"
	"math"
	"runtime"

	"github.com/psantana5/tictoc/pkg/clock"
)

// ErrNotStarted is returned by Stop and Toc when no start reading was ever taken
var ErrNotStarted = errors.New("timer stopped before it was started")

// Timer measures one interval at a time in a single clock domain.
// Calling Start again before Stop replaces the pending start reading.
type Timer struct {
	src     clock.Source
	start   clock.Reading
	started bool
	// pinned is set while Start holds runtime.LockOSThread for a thread clock
	pinned bool
}

// NewTimer binds a timer to src for its whole lifetime
func NewTimer(src clock.Source) *Timer {
	return &Timer{src: src}
}

// NewWallTimer measures monotonic real time
func NewWallTimer() *Timer {
	return NewTimer(clock.Monotonic())
}

// NewProcessTimer measures CPU time consumed by the whole process
func NewProcessTimer() *Timer {
	return NewTimer(clock.ProcessCPU())
}

// NewThreadTimer measures CPU time consumed by the calling OS thread. Start
// locks the calling goroutine to its thread until Stop, so Start and Stop
// must run on the same goroutine.
func NewThreadTimer() *Timer {
	return NewTimer(clock.ThreadCPU())
}

// New returns a timer for domain d
func New(d clock.Domain) (*Timer, error) {
	src, err := clock.ForDomain(d)
	if err != nil {
		return nil, err
	}
	return NewTimer(src), nil
}

// Domain returns the clock domain the timer is bound to
func (t *Timer) Domain() clock.Domain {
	return t.src.Domain()
}

// Available reports whether the backing clock can be read on this platform.
// Stop on an unavailable timer returns NaN.
func (t *Timer) Available() bool {
	return t.src.Available()
}

// Start records the start reading, overwriting any earlier one
func (t *Timer) Start() {
	if t.src.Domain() == clock.Thread && t.src.Available() && !t.pinned {
		runtime.LockOSThread()
		t.pinned = true
	}
	t.start = t.src.Now()
	t.started = true
}

// Stop returns the seconds elapsed since the last Start. The start reading is
// kept, so calling Stop again measures from the same start. Thread CPU
// readings are the exception: they are only comparable on the OS thread that
// took them, so once Stop releases the thread lock the start is dropped and
// another Stop returns ErrNotStarted.
//
// The result is NaN when the clock could not be read; that is not an error.
// ErrNotStarted means Start was never called.
func (t *Timer) Stop() (float64, error) {
	if !t.started {
		return math.NaN(), ErrNotStarted
	}
	elapsed := t.src.Now().Sub(t.start)
	if t.pinned {
		runtime.UnlockOSThread()
		t.pinned = false
		t.started = false
	}
	return elapsed, nil
}

// Clone returns an independent copy holding the same pending start reading.
// The copy never owns the original's thread lock, so a pending thread CPU
// start is not copied.
func (t *Timer) Clone() *Timer {
	c := *t
	if c.pinned {
		c.pinned = false
		c.started = false
		c.start = clock.Reading{}
	}
	return &c
}
