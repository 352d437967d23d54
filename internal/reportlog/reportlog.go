// Package reportlog writes the newline-delimited solution reports spec §6
// assigns to driver CLIs: one line per solved synthesis, each stamped
// with a run-scoped UUID so lines from concurrent `cmd/kolmogorov`
// invocations sharing a log file stay attributable to the run that wrote
// them, the same role uuid.New() plays in funvibe-funxy's own
// internal/ext test helpers, which mint one per scenario to keep
// parallel fixtures apart.
package reportlog

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Logger writes report lines to an underlying writer, prefixing each run
// with a stable RunID.
type Logger struct {
	out   io.Writer
	runID uuid.UUID
}

// New returns a Logger for a fresh run, writing to out.
func New(out io.Writer) *Logger {
	return &Logger{out: out, runID: uuid.New()}
}

// RunID returns this logger's run-scoped identifier.
func (l *Logger) RunID() string { return l.runID.String() }

// Solved writes the §6 report line: "Solution found for <ID>: <term>
// (≈ <analysis>)". description is a caller-supplied human summary of the
// term (its printed form); approx is a short rendering of its analysis
// (e.g. a language's semantic summary, or "unique" / "canonical").
func (l *Logger) Solved(taskID, description, approx string) {
	fmt.Fprintf(l.out, "Solution found for %s/%s: %s (≈ %s)\n", l.runID, taskID, description, approx)
}

// Progress writes a plain progress line, gated by the caller's
// print_freq (spec §6 "print_freq... how often to log progress").
func (l *Logger) Progress(taskID string, iter int, bestScore float64) {
	fmt.Fprintf(l.out, "%s/%s: iteration %d, best score %.4f\n", l.runID, taskID, iter, bestScore)
}

// NotFound writes a line reporting that the search budget was exhausted
// without a solution — the non-error "empty search" outcome of spec §7.
// budget is whatever limit the caller ran under: an iteration count for the
// MH drivers, the maximum term size for exhaustive search.
func (l *Logger) NotFound(taskID string, budget int) {
	fmt.Fprintf(l.out, "No solution found for %s/%s within budget %d\n", l.runID, taskID, budget)
}
