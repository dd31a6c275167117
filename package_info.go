// Package try is a minimal test harness meant to be embedded in test
// programs, rather than run as a standalone tool with test discovery.
//
// The general model is:
//
// 1. A Runner executes caller-supplied test bodies. A body signals failure
// by returning a non-nil error or by panicking; any other outcome is a
// success. The Runner never lets a panic escape.
//
// 2. When a body fails, the Runner writes one human-readable report to its
// output sink: the call site, the failure description, and each argument
// the body was invoked with, rendered as text.
//
// 3. Cumulative success and failure counts are kept on the Runner; the
// embedding program inspects them (or the boolean results of individual
// invocations) to decide what to do next. The Runner itself never aborts
// or selects exit codes.
//
// Assertion helpers (Equal, NotEqual, Less, LessEqual, Raises) are sugar
// on top of the same invocation path.
package try
