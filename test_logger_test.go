package try

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestConsoleTestLoggerStatusLines(t *testing.T) {
	withoutColor(t)

	var sink, status bytes.Buffer
	r := New(&sink)
	r.SetTestLogger(&ConsoleTestLogger{Dest: &status})

	r.Equal(At("case.go", 1), 5, 5)
	r.Equal(At("case.go", 2), 5, 6)

	assert.Equal(t,
		"PASS case.go, line 1\n"+
			"FAIL case.go, line 2: Arguments are not equal!\n",
		status.String())
}

func TestConsoleTestLoggerFailureWithoutDescription(t *testing.T) {
	withoutColor(t)

	var sink, status bytes.Buffer
	r := New(&sink)
	r.SetTestLogger(&ConsoleTestLogger{Dest: &status})

	r.Run(At("case.go", 3), func(...any) error { panic(42) })

	assert.Equal(t, "FAIL case.go, line 3\n", status.String())
}

func TestSetTestLoggerNilRestoresNull(t *testing.T) {
	var sink bytes.Buffer
	r := New(&sink)
	r.SetTestLogger(&ConsoleTestLogger{Dest: &sink})
	r.SetTestLogger(nil)

	r.Equal(At("case.go", 4), 5, 5)

	assert.Equal(t, "", sink.String())
}
