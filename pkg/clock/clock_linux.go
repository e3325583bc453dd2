//go:build linux

package clock

import "golang.org/x/sys/unix"

// posixClock reads one clock_gettime(2) clock id
type posixClock struct {
	domain Domain
	id     int32
}

func (c posixClock) Domain() Domain  { return c.domain }
func (c posixClock) Available() bool { return true }

func (c posixClock) Now() Reading {
	var ts unix.Timespec
	if err := unix.ClockGettime(c.id, &ts); err != nil {
		return Unavailable(c.domain)
	}
	return NewReading(c.domain, ts.Nano())
}

// Monotonic returns the CLOCK_MONOTONIC backend
func Monotonic() Source {
	return posixClock{domain: Wall, id: unix.CLOCK_MONOTONIC}
}

// ProcessCPU returns the CLOCK_PROCESS_CPUTIME_ID backend
func ProcessCPU() Source {
	return posixClock{domain: Process, id: unix.CLOCK_PROCESS_CPUTIME_ID}
}

// ThreadCPU returns the CLOCK_THREAD_CPUTIME_ID backend
func ThreadCPU() Source {
	return posixClock{domain: Thread, id: unix.CLOCK_THREAD_CPUTIME_ID}
}
