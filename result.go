package try

import (
	"fmt"
	"io"
)

// Summary is a snapshot of a Runner's cumulative counters.
type Summary struct {
	Successes int
	Failures  int
}

// Summary returns the counters at this point in the run.
func (r *Runner) Summary() Summary {
	return Summary{Successes: r.successCount, Failures: r.failCount}
}

func (s Summary) OK() bool {
	return s.Failures == 0
}

func (s Summary) Total() int {
	return s.Successes + s.Failures
}

// WriteSummary writes a short human-readable run summary to dest. What to
// do about a failed run (exit codes, aborting) is left to the caller.
func WriteSummary(dest io.Writer, s Summary) {
	if s.OK() {
		fmt.Fprintf(dest, "All %d tests passed\n", s.Total())
		return
	}
	fmt.Fprintf(dest, "%d tests run, %d failed\n", s.Total(), s.Failures)
}
