// Package logging provides the small logging surface used by the harness:
// an interface the Runner writes per-invocation debug lines through, a
// discard implementation, and a capturing implementation for embedding
// programs that want to collect those lines and dump them later.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

type writerLogger struct {
	dest io.Writer
}

// WriterLogger returns a Logger that writes each message as one line to
// dest.
func WriterLogger(dest io.Writer) Logger { return writerLogger{dest: dest} }

func (w writerLogger) Printf(message string, args ...interface{}) {
	fmt.Fprintf(w.dest, message+"\n", args...)
}

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates messages in memory. It is safe for concurrent
// use even though a Runner is single-threaded, so one logger can be shared
// between runners on different goroutines.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes the captured messages to dest, one line each, prefixed and
// timestamped.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}
