package try

import (
	"fmt"
	"io"
	"os"

	"github.com/trylib/try/logging"
)

// Func is a test body. It receives the arguments that were given to Run and
// signals failure by returning a non-nil error or by panicking.
type Func func(args ...any) error

// Runner executes test bodies and accumulates success/failure counts,
// writing one report per failed invocation to its output sink.
//
// A Runner is not safe for concurrent use from multiple goroutines; callers
// needing that must serialize access or use one Runner per goroutine.
// Re-entrant use is fine: a test body may invoke the same Runner again.
type Runner struct {
	out          io.Writer
	testLogger   TestLogger
	debugLogger  logging.Logger
	successCount int
	failCount    int
}

// New creates a Runner that writes failure reports to out. A nil out means
// os.Stdout. The Runner does not own the sink; the caller must keep it
// valid for the Runner's entire lifetime.
func New(out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		out:         out,
		testLogger:  nullTestLogger{},
		debugLogger: logging.NullLogger(),
	}
}

// Output returns the sink that failure reports are written to. Callers may
// write additional diagnostic text of their own, interleaved with the
// Runner's reports.
func (r *Runner) Output() io.Writer { return r.out }

// SetTestLogger installs an observer that is notified after every
// invocation. A nil logger removes the current one.
func (r *Runner) SetTestLogger(l TestLogger) {
	if l == nil {
		l = nullTestLogger{}
	}
	r.testLogger = l
}

// SetDebugLogger installs a logger for per-invocation debug lines. A nil
// logger disables debug output.
func (r *Runner) SetDebugLogger(l logging.Logger) {
	if l == nil {
		l = logging.NullLogger()
	}
	r.debugLogger = l
}

// SuccessCount returns the number of successful invocations so far.
func (r *Runner) SuccessCount() int { return r.successCount }

// FailCount returns the number of failed invocations so far.
func (r *Runner) FailCount() int { return r.failCount }

// Run executes test with the given arguments. The return value of a passing
// body is ignored beyond being nil. On failure the report written to the
// sink contains sc, the failure description if one could be extracted, and
// each of args rendered as text, in call order.
//
// Run never panics: panics from the body, from argument rendering, and from
// the sink itself are all converted into the failure path.
func (r *Runner) Run(sc SourceContext, test Func, args ...any) bool {
	out := invoke(test, args)
	if out.passed {
		r.successCount++
		r.debugLogger.Printf("test passed at %s", sc)
		r.testLogger.TestPassed(sc)
		return true
	}
	r.report(sc, out, args)
	r.failCount++
	r.debugLogger.Printf("test failed at %s: %s", sc, out.message)
	r.testLogger.TestFailed(sc, out.message)
	return false
}

// outcome is the normalized result of running a test body.
type outcome struct {
	passed     bool
	message    string
	hasMessage bool
}

func invoke(test Func, args []any) (out outcome) {
	defer func() {
		if v := recover(); v != nil {
			if err, ok := v.(error); ok {
				out = failure(err)
			} else {
				out = outcome{}
			}
		}
	}()
	if err := test(args...); err != nil {
		return failure(err)
	}
	return outcome{passed: true}
}

// failure extracts a description from err. An Error method that itself
// panics demotes the failure to the no-message form.
func failure(err error) (out outcome) {
	defer func() {
		if recover() != nil {
			out = outcome{}
		}
	}()
	return outcome{message: err.Error(), hasMessage: true}
}

func (r *Runner) report(sc SourceContext, out outcome, args []any) {
	// a sink or observer that panics must not break the never-panic contract
	defer func() { _ = recover() }()

	fmt.Fprintf(r.out, "Test failed: %s\n", sc)
	if out.hasMessage {
		fmt.Fprintf(r.out, "Message: \"%s\"\n", out.message)
	} else {
		fmt.Fprintln(r.out, "(no message)")
	}
	if len(args) == 0 {
		fmt.Fprint(r.out, "(no arguments)\n\n")
		return
	}
	fmt.Fprintln(r.out, "Arguments:")
	for _, arg := range args {
		fmt.Fprintln(r.out, formatArg(arg))
	}
	fmt.Fprintln(r.out)
}
