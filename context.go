package try

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// SourceContext identifies the call site of a test invocation. It is used
// only to render the location line of a failure report.
type SourceContext struct {
	File string
	Line int
}

// At returns a SourceContext for an explicitly supplied location.
func At(file string, line int) SourceContext {
	return SourceContext{File: file, Line: line}
}

// Here captures the file and line of its own call site. The file is
// shortened to its base name so reports stay stable across build
// environments.
func Here() SourceContext {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return SourceContext{File: "unknown"}
	}
	return SourceContext{File: filepath.Base(file), Line: line}
}

func (sc SourceContext) String() string {
	return fmt.Sprintf("%s, line %d", sc.File, sc.Line)
}
