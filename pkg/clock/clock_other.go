//go:build !linux

package clock

// Monotonic returns the Go runtime monotonic clock
func Monotonic() Source {
	return GoMonotonic()
}

// ProcessCPU returns the user+system process times reported by the OS
func ProcessCPU() Source {
	return ProcessTimes()
}

// ThreadCPU is not provided outside Linux; its readings are never valid
func ThreadCPU() Source {
	return unavailableClock{domain: Thread}
}
