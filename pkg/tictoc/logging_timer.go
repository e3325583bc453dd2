package tictoc

import (
	"fmt"
	"math"
	"strings"

	"github.com/psantana5/tictoc/pkg/clock"
	"github.com/psantana5/tictoc/pkg/engfmt"
	"github.com/psantana5/tictoc/pkg/stats"
)

// LabelWidth is the column a non-empty label is padded or truncated to in StatString
const LabelWidth = 20

// LoggingTimer wraps a Timer and logs every completed measurement
type LoggingTimer struct {
	// Label is printed in front of StatString output when non-empty
	Label string

	timer  *Timer
	log    []float64
	format engfmt.Options
}

// NewLoggingTimer wraps t
func NewLoggingTimer(t *Timer, label string) *LoggingTimer {
	return &LoggingTimer{
		Label:  label,
		timer:  t,
		format: engfmt.DefaultOptions(),
	}
}

// NewLogging returns a logging timer for domain d
func NewLogging(d clock.Domain, label string) (*LoggingTimer, error) {
	t, err := New(d)
	if err != nil {
		return nil, err
	}
	return NewLoggingTimer(t, label), nil
}

// NewWall logs wall-clock measurements
func NewWall(label string) *LoggingTimer {
	return NewLoggingTimer(NewWallTimer(), label)
}

// NewProcess logs process CPU time measurements
func NewProcess(label string) *LoggingTimer {
	return NewLoggingTimer(NewProcessTimer(), label)
}

// NewThread logs thread CPU time measurements
func NewThread(label string) *LoggingTimer {
	return NewLoggingTimer(NewThreadTimer(), label)
}

// SetFormat changes the formatter options StatString uses
func (lt *LoggingTimer) SetFormat(opts engfmt.Options) {
	lt.format = opts
}

// Domain returns the clock domain of the wrapped timer
func (lt *LoggingTimer) Domain() clock.Domain {
	return lt.timer.Domain()
}

// Available reports whether the wrapped timer's clock can be read
func (lt *LoggingTimer) Available() bool {
	return lt.timer.Available()
}

// Tic starts the wrapped timer
func (lt *LoggingTimer) Tic() {
	lt.timer.Start()
}

// Toc stops the wrapped timer, appends the duration to the log and returns it.
// NaN durations from an unavailable clock are logged too. Nothing is logged
// when the timer was never started.
func (lt *LoggingTimer) Toc() (float64, error) {
	d, err := lt.timer.Stop()
	if err != nil {
		return d, err
	}
	lt.log = append(lt.log, d)
	return d, nil
}

// Time measures one call of fn
func (lt *LoggingTimer) Time(fn func()) (float64, error) {
	lt.Tic()
	fn()
	return lt.Toc()
}

// Elapsed returns the most recent measurement
func (lt *LoggingTimer) Elapsed() (float64, error) {
	if len(lt.log) == 0 {
		return math.NaN(), stats.ErrEmpty
	}
	return lt.log[len(lt.log)-1], nil
}

// MeanElapsed returns the mean of the log
func (lt *LoggingTimer) MeanElapsed() (float64, error) {
	return stats.Mean(lt.log)
}

// MaxElapsed returns the largest logged measurement
func (lt *LoggingTimer) MaxElapsed() (float64, error) {
	v, err := stats.Max(lt.log)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// MinElapsed returns the smallest logged measurement
func (lt *LoggingTimer) MinElapsed() (float64, error) {
	v, err := stats.Min(lt.log)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// StdevElapsed returns the sample standard deviation of the log.
// It needs at least two measurements.
func (lt *LoggingTimer) StdevElapsed() (float64, error) {
	return stats.Stdev(lt.log)
}

// Summary returns all statistics of the log at once
func (lt *LoggingTimer) Summary() (stats.Summary, error) {
	return stats.Summarize(lt.log)
}

// Len returns the number of logged measurements
func (lt *LoggingTimer) Len() int {
	return len(lt.log)
}

// Samples returns a copy of the log in measurement order
func (lt *LoggingTimer) Samples() []float64 {
	out := make([]float64, len(lt.log))
	copy(out, lt.log)
	return out
}

// ClearLog empties the log. A pending Tic is not affected.
func (lt *LoggingTimer) ClearLog() {
	lt.log = lt.log[:0]
}

// StatString renders one line:
//
//	<label>  mean: <v>     max: <v>     min: <v>     stdev: <v>
//
// The label is padded or truncated to LabelWidth and omitted when empty.
// Statistics the log cannot support yet render as NaN.
func (lt *LoggingTimer) StatString() string {
	summary, _ := lt.Summary()
	return StatLine(lt.Label, LabelWidth, summary, lt.format)
}

// StatLine renders summary in the StatString layout with the label fitted to
// labelWidth. An empty label is left out.
func StatLine(label string, labelWidth int, summary stats.Summary, opts engfmt.Options) string {
	var b strings.Builder
	if label != "" {
		b.WriteString(FitLabel(label, labelWidth))
	}
	fmt.Fprintf(&b, "  mean: %s     max: %s     min: %s     stdev: %s",
		engfmt.FormatWith(summary.Mean, opts),
		engfmt.FormatWith(summary.Max, opts),
		engfmt.FormatWith(summary.Min, opts),
		engfmt.FormatWith(summary.Stdev, opts),
	)
	return b.String()
}

// String implements fmt.Stringer
func (lt *LoggingTimer) String() string {
	return lt.StatString()
}

// Clone deep-copies the timer state and the log
func (lt *LoggingTimer) Clone() *LoggingTimer {
	return &LoggingTimer{
		Label:  lt.Label,
		timer:  lt.timer.Clone(),
		log:    append([]float64(nil), lt.log...),
		format: lt.format,
	}
}

// FitLabel pads label with spaces or truncates it to exactly width runes
func FitLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) > width {
		runes = runes[:width]
	}
	return fmt.Sprintf("%-*s", width, string(runes))
}
