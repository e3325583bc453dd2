package report

import (
	"errors"
	"time"

	"github.com/psantana5/tictoc/pkg/clock"
	"github.com/psantana5/tictoc/pkg/logging"
	"github.com/psantana5/tictoc/pkg/stats"
	"github.com/psantana5/tictoc/pkg/tictoc"
)

// Result is a frozen copy of one timer's statistics. Set once, never change.
type Result struct {
	Label      string
	Domain     clock.Domain
	Available  bool
	Summary    stats.Summary
	CapturedAt time.Time
	// Err is set when the log is empty; Summary then holds NaN values
	Err error
}

// Capture freezes the current statistics of lt
func Capture(lt *tictoc.LoggingTimer) Result {
	summary, err := lt.Summary()
	return Result{
		Label:      lt.Label,
		Domain:     lt.Domain(),
		Available:  lt.Available(),
		Summary:    summary,
		CapturedAt: time.Now(),
		Err:        err,
	}
}

// Empty reports whether no measurement was logged
func (r Result) Empty() bool {
	return errors.Is(r.Err, stats.ErrEmpty)
}

// LogSummary emits one line per timer. Unavailable clocks and empty logs are
// logged as warnings so they stand out.
func (r Result) LogSummary(logger *logging.Logger) {
	fields := logging.Fields{
		"timer":   r.Label,
		"domain":  r.Domain.String(),
		"samples": r.Summary.Count,
	}

	switch {
	case !r.Available:
		logger.Warn("clock domain not available on this platform", fields)
	case r.Empty():
		logger.Warn("timer has no measurements", fields)
	default:
		fields["mean_s"] = r.Summary.Mean
		fields["min_s"] = r.Summary.Min
		fields["max_s"] = r.Summary.Max
		fields["stdev_s"] = r.Summary.Stdev
		logger.Info("timer summary", fields)
	}
}
