package routine

import "errors"

// ErrExited is returned by Join when the goroutine called runtime.Goexit.
var ErrExited = errors.New("goroutine exited without returning")

// Routine is a goroutine started by Spawn.
type Routine struct {
	done chan struct{}
	err  error
}

// Spawn runs fn in a new goroutine. A panic in fn is recovered and reported by Join.
//
//	r := routine.Spawn(func() {
//	    failfast.Lock(m, func(v *State) { ... })
//	})
//	if err := r.Join(); err != nil {
//	    var f *escalate.Failure
//	    if errors.As(err, &f) { ... }
//	}
func Spawn(fn func()) *Routine {
	r := &Routine{done: make(chan struct{})}
	go r.run(fn)
	return r
}

func (r *Routine) run(fn func()) {
	normal := false
	defer close(r.done)
	defer func() {
		if v := recover(); v != nil {
			r.err = NewRecovered(3, v).AsError()
			return
		}
		if !normal {
			r.err = ErrExited
		}
	}()

	fn()
	normal = true
}

// Join waits for the goroutine and returns nil if fn returned normally, a *RecoveredError
// if it panicked, or ErrExited if it called runtime.Goexit.
func (r *Routine) Join() error {
	<-r.done
	return r.err
}

// Done is closed when the goroutine has finished.
func (r *Routine) Done() <-chan struct{} {
	return r.done
}

// RunSafe runs fn synchronously and recovers any panic.
//
// If fn panics, every cleanup is called in order with the panic value and the panic
// does not propagate to the caller.
//
//	routine.RunSafe(func() {
//	    // code that may panic
//	}, func(r interface{}) {
//	    // cleanup on recovery
//	})
func RunSafe(fn func(), cleanup ...func(r interface{})) {
	defer Recover(cleanup...)

	fn()
}

// GoSafe runs fn in a new goroutine and recovers any panic, see RunSafe.
func GoSafe(fn func(), cleanup ...func(r interface{})) {
	go RunSafe(fn, cleanup...)
}
