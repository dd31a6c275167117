package try

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TestLogger is notified after every invocation, in addition to the report
// the Runner writes to its sink. Implementations must not invoke the Runner
// they are observing.
type TestLogger interface {
	TestPassed(sc SourceContext)
	TestFailed(sc SourceContext, description string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestPassed(SourceContext)         {}
func (n nullTestLogger) TestFailed(SourceContext, string) {}

// NullTestLogger returns a TestLogger that ignores everything.
func NullTestLogger() TestLogger { return nullTestLogger{} }

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
)

// ConsoleTestLogger writes one status line per invocation to Dest (default
// os.Stdout), coloring PASS green and FAIL red when the destination
// supports it. The status stream is separate from the Runner's sink, so
// the report format there is unaffected.
type ConsoleTestLogger struct {
	Dest io.Writer
}

func (c *ConsoleTestLogger) TestPassed(sc SourceContext) {
	fmt.Fprintf(c.dest(), "%s %s\n", passLabel("PASS"), sc)
}

func (c *ConsoleTestLogger) TestFailed(sc SourceContext, description string) {
	if description == "" {
		fmt.Fprintf(c.dest(), "%s %s\n", failLabel("FAIL"), sc)
		return
	}
	fmt.Fprintf(c.dest(), "%s %s: %s\n", failLabel("FAIL"), sc, description)
}

func (c *ConsoleTestLogger) dest() io.Writer {
	if c.Dest == nil {
		return os.Stdout
	}
	return c.Dest
}
