// Package report summarises several logging timers at once, as a table, as
// stat lines or as log lines.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/psantana5/tictoc/pkg/engfmt"
	"github.com/psantana5/tictoc/pkg/logging"
	"github.com/psantana5/tictoc/pkg/tictoc"
)

// Options controls how values are rendered
type Options struct {
	Format     engfmt.Options
	LabelWidth int
	// SIUnits renders table cells as "12.3 ms" instead of "12.30e-3"
	SIUnits bool
}

// DefaultOptions matches LoggingTimer.StatString
func DefaultOptions() Options {
	return Options{
		Format:     engfmt.DefaultOptions(),
		LabelWidth: tictoc.LabelWidth,
	}
}

// Report is an ordered set of timers
type Report struct {
	timers []*tictoc.LoggingTimer
	opts   Options
}

// New creates an empty report
func New(opts Options) *Report {
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = tictoc.LabelWidth
	}
	return &Report{opts: opts}
}

// Add appends timers in display order
func (r *Report) Add(timers ...*tictoc.LoggingTimer) {
	r.timers = append(r.timers, timers...)
}

// Len returns the number of timers
func (r *Report) Len() int {
	return len(r.timers)
}

// Results captures every timer
func (r *Report) Results() []Result {
	results := make([]Result, 0, len(r.timers))
	for _, lt := range r.timers {
		results = append(results, Capture(lt))
	}
	return results
}

// WriteStatStrings writes one StatString line per timer, with labels fitted
// to the report's label width
func (r *Report) WriteStatStrings(w io.Writer) error {
	for _, res := range r.Results() {
		line := tictoc.StatLine(res.Label, r.opts.LabelWidth, res.Summary, r.opts.Format)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTable writes a table with one row per timer
func (r *Report) RenderTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Timer", "Clock", "N", "Mean", "Max", "Min", "Stdev")

	for _, res := range r.Results() {
		if err := table.Append(
			res.Label,
			res.Domain.String(),
			strconv.Itoa(res.Summary.Count),
			r.cell(res, res.Summary.Mean),
			r.cell(res, res.Summary.Max),
			r.cell(res, res.Summary.Min),
			r.cell(res, res.Summary.Stdev),
		); err != nil {
			return fmt.Errorf("failed to add row for %q: %w", res.Label, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (r *Report) cell(res Result, v float64) string {
	if !res.Available {
		return "n/a"
	}
	if r.opts.SIUnits {
		return engfmt.FormatSI(v, r.opts.Format.Precision, "s")
	}
	compact := r.opts.Format
	compact.FixedWidth = false
	return engfmt.FormatWith(v, compact)
}

// LogSummaries logs one line per timer
func (r *Report) LogSummaries(logger *logging.Logger) {
	for _, res := range r.Results() {
		res.LogSummary(logger)
	}
}
