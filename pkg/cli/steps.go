package cli

import (
	"fmt"
	"io"
	"os"
)

// StepReporter prints step-by-step progress for a multi-stage run.
// An assessment has few, slow stages, so discrete step lines beat a
// progress bar.
type StepReporter struct {
	writer io.Writer
	total  int
	step   int
}

// NewStepReporter creates a reporter for total steps writing to w.
// If w is nil, it defaults to os.Stdout.
func NewStepReporter(w io.Writer, total int) *StepReporter {
	if w == nil {
		w = os.Stdout
	}
	return &StepReporter{writer: w, total: total}
}

// Step announces the next step.
func (r *StepReporter) Step(label string) {
	r.step++
	fmt.Fprintf(r.writer, "[%d/%d] %s...\n", r.step, r.total, label)
}

// Done marks the current step as finished.
func (r *StepReporter) Done(msg string) {
	fmt.Fprintf(r.writer, "  ✓ %s\n", msg)
}

// Fail reports a failed step.
func (r *StepReporter) Fail(err error) {
	fmt.Fprintf(r.writer, "  ✗ %v\n", err)
}
