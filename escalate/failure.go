package escalate

import (
	"fmt"
	"io"
)

// Failure is the panic value of an escalation.
type Failure struct {
	*stack

	Op       string
	Location string // file:line of the call site
	Policy   Policy
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s (%s escalation @ %s)", f.Error(), f.Policy, f.Location)
			f.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
