package clock

import (
	"math"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// timesClock sums the kernel and user CPU time of this process as reported
// by the OS process table
type timesClock struct {
	proc *process.Process
}

// ProcessTimes returns a process CPU clock built on the OS process times
// (user + system). Its resolution is coarse, typically one scheduler tick.
// When the process cannot be inspected the clock is unavailable.
func ProcessTimes() Source {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return unavailableClock{domain: Process}
	}
	return timesClock{proc: proc}
}

func (c timesClock) Domain() Domain  { return Process }
func (c timesClock) Available() bool { return true }

func (c timesClock) Now() Reading {
	times, err := c.proc.Times()
	if err != nil {
		return Unavailable(Process)
	}
	seconds := times.User + times.System
	return NewReading(Process, int64(math.Round(seconds*float64(time.Second))))
}
