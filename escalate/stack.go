package escalate

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

const stackDepth = 32

type (
	StackTrace = errors.StackTrace
	Frame      = errors.Frame
)

// stack represents a stack of program counters.
type stack []uintptr

func (st *stack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			frames := runtime.CallersFrames(*st)
			for {
				frame, more := frames.Next()
				fmt.Fprintf(s, "\n%s\n\t%s:%d", frame.Function, frame.File, frame.Line)
				if !more {
					break
				}
			}
		}
	}
}

// StackTrace is compatible with pkg/errors.
func (st *stack) StackTrace() StackTrace {
	f := make([]Frame, len(*st))
	for i := 0; i < len(f); i++ {
		f[i] = Frame((*st)[i])
	}
	return f
}

func callers(skip int, depth int) *stack {
	if skip < 0 {
		skip = 0
	}
	if depth <= 0 {
		depth = stackDepth
	}
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pcs)
	var st stack = pcs[:n]
	return &st
}

// location returns "file:line" of the frame skip levels above the caller of location.
func location(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
