// Package clock reads the three clock domains a timer can be bound to: wall
// (monotonic real time), process CPU time and thread CPU time.
//
// Each domain has one backend per platform, chosen at compile time. A backend
// that cannot serve its domain still satisfies Source; its readings are simply
// not valid, and subtracting them yields NaN.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnknownDomain is returned for a domain value or name that does not exist
var ErrUnknownDomain = errors.New("unknown clock domain")

// Domain is one independent notion of elapsed time. Readings of different
// domains are not comparable.
type Domain int

const (
	Wall    Domain = iota // monotonic real time
	Process               // CPU time of the calling process (user + system)
	Thread                // CPU time of the calling OS thread
)

// Domains lists every domain in declaration order
func Domains() []Domain {
	return []Domain{Wall, Process, Thread}
}

func (d Domain) String() string {
	switch d {
	case Wall:
		return "wall"
	case Process:
		return "process"
	case Thread:
		return "thread"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// ParseDomain accepts the names produced by Domain.String, case-insensitively
func ParseDomain(name string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wall", "system", "monotonic":
		return Wall, nil
	case "process", "cpu":
		return Process, nil
	case "thread":
		return Thread, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownDomain)
	}
}

// Reading is one timestamp from one domain. The zero Reading is not valid.
type Reading struct {
	domain Domain
	nanos  int64
	ok     bool
}

// NewReading builds a valid reading. Source implementations outside this
// package use it to report their timestamps.
func NewReading(d Domain, nanos int64) Reading {
	return Reading{domain: d, nanos: nanos, ok: true}
}

// Unavailable is the reading of a domain that cannot be queried
func Unavailable(d Domain) Reading {
	return Reading{domain: d}
}

// Domain returns the domain the reading was taken in
func (r Reading) Domain() Domain { return r.domain }

// Valid reports whether the clock query succeeded
func (r Reading) Valid() bool { return r.ok }

// Nanos returns the raw timestamp in nanoseconds from an arbitrary epoch
func (r Reading) Nanos() int64 { return r.nanos }

// Sub returns r - start in seconds. The result is NaN when either reading is
// invalid or the readings come from different domains.
func (r Reading) Sub(start Reading) float64 {
	if !r.ok || !start.ok || r.domain != start.domain {
		return math.NaN()
	}
	return float64(r.nanos-start.nanos) / float64(time.Second)
}

// Source queries one clock domain
type Source interface {
	Domain() Domain
	Now() Reading
	// Available reports whether the backend can serve its domain at all
	Available() bool
}

// ForDomain returns the platform backend for d
func ForDomain(d Domain) (Source, error) {
	switch d {
	case Wall:
		return Monotonic(), nil
	case Process:
		return ProcessCPU(), nil
	case Thread:
		return ThreadCPU(), nil
	default:
		return nil, fmt.Errorf("%v: %w", d, ErrUnknownDomain)
	}
}

// unavailableClock backs domains the platform does not provide
type unavailableClock struct {
	domain Domain
}

func (c unavailableClock) Domain() Domain  { return c.domain }
func (c unavailableClock) Now() Reading    { return Unavailable(c.domain) }
func (c unavailableClock) Available() bool { return false }
