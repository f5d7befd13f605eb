package escalate

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// ExitCode is the process exit status of a Global escalation.
const ExitCode = 111

type Policy int

const (
	// Local unwinds only the calling goroutine.
	Local Policy = iota
	// Global terminates the whole process.
	Global
)

func (p Policy) String() string {
	switch p {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

type Escalator struct {
	sink     Sink
	w        io.Writer
	exit     func(code int)
	exitCode int

	// mu serializes banners so concurrent mass panics do not interleave.
	mu sync.Mutex
}

type Option func(*Escalator)

// WithSink routes Global banners through s instead of the raw writer.
func WithSink(s Sink) Option {
	return func(e *Escalator) {
		e.sink = s
	}
}

// WithWriter sets the raw writer used when no sink is configured. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(e *Escalator) {
		e.w = w
	}
}

// WithExitFunc replaces os.Exit. If fn returns, the escalation panics like Local.
func WithExitFunc(fn func(code int)) Option {
	return func(e *Escalator) {
		e.exit = fn
	}
}

func WithExitCode(code int) Option {
	return func(e *Escalator) {
		e.exitCode = code
	}
}

func New(opts ...Option) *Escalator {
	e := &Escalator{
		w:        os.Stderr,
		exit:     os.Exit,
		exitCode: ExitCode,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.w == nil {
		e.w = io.Discard
	}
	if e.exit == nil {
		e.exit = os.Exit
	}
	return e
}

// Escalate reports err from operation op according to p. It never returns.
func (e *Escalator) Escalate(p Policy, op string, err error) {
	e.raise(p, op, err, 1)
}

// EscalateSkip is like Escalate but attributes the failure to the caller skip frames up.
func (e *Escalator) EscalateSkip(p Policy, op string, err error, skip int) {
	e.raise(p, op, err, skip+1)
}

func (e *Escalator) raise(p Policy, op string, err error, skip int) {
	f := &Failure{
		stack:    callers(skip+1, stackDepth),
		Op:       op,
		Location: location(skip + 1),
		Policy:   p,
		Err:      err,
	}
	if p == Global {
		e.massPanic(f)
	}
	panic(f)
}

// massPanic writes the banner and exits. The exit is deferred so that a
// panicking sink cannot skip it.
func (e *Escalator) massPanic(f *Failure) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.exit(e.exitCode)

	if e.sink != nil && e.logBanner(f) {
		return
	}
	_, _ = fmt.Fprintf(e.w, "----- MASS PANIC: %s @ %s: %v -----\n", f.Op, f.Location, f.Err)
}

// logBanner reports whether the sink accepted the banner without panicking.
func (e *Escalator) logBanner(f *Failure) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	e.sink.Error("mass panic, exiting all goroutines",
		"op", f.Op,
		"location", f.Location,
		"err", f.Err,
		"exit_code", e.exitCode,
	)
	return true
}

var std atomic.Pointer[Escalator]

func init() {
	std.Store(New())
}

// Default returns the process-wide Escalator.
func Default() *Escalator {
	return std.Load()
}

// SetDefault replaces the process-wide Escalator. Passing nil panics.
func SetDefault(e *Escalator) {
	if e == nil {
		panic("escalate: nil escalator")
	}
	std.Store(e)
}

func Escalate(p Policy, op string, err error) {
	Default().raise(p, op, err, 1)
}

func EscalateSkip(p Policy, op string, err error, skip int) {
	Default().raise(p, op, err, skip+1)
}

// MassPanic terminates all goroutines after logging v.
func MassPanic(v any) {
	Default().raise(Global, "mass panic", asError(v), 1)
}

// UnwrapOrMass returns v, or mass panics if err is not nil.
func UnwrapOrMass[T any](v T, err error) T {
	if err != nil {
		Default().raise(Global, "unwrap", err, 1)
	}
	return v
}

// Must returns v, or panics with a Local *Failure if err is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		Default().raise(Local, "unwrap", err, 1)
	}
	return v
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
