// Package failfast wraps lock acquisition and channel operations so that a poisoned lock
// or a disconnected channel is escalated instead of returned.
//
// Every operation has three forms:
//
//	Lock(m, fn)          // Local: panic with *escalate.Failure in the calling goroutine
//	LockOrMass(m, fn)    // Global: log a banner and exit the process with escalate.ExitCode
//	LockWith(p, m, fn)   // policy chosen by the caller at run time
//
// The same applies to RLock, WLock, Send and Recv. Nothing is retried.
//
//	state := guard.NewMutex(State{})
//	tx, rx := chanx.New[Event](16)
//
//	failfast.Lock(state, func(s *State) { s.Count++ })
//	failfast.SendOrMass(tx, Event{})
//	ev := failfast.Recv(rx)
package failfast
