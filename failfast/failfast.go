package failfast

import (
	"github.com/saltfishpr/failfast/chanx"
	"github.com/saltfishpr/failfast/escalate"
	"github.com/saltfishpr/failfast/guard"
)

// Operation names reported in escalations.
const (
	OpLock  = "lock"
	OpRLock = "read lock"
	OpWLock = "write lock"
	OpSend  = "send"
	OpRecv  = "recv"
)

// Lock acquires m exclusively and calls fn. A poisoned m escalates locally.
func Lock[T any](m *guard.Mutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(escalate.Local, OpLock, err, 1)
	}
}

// LockOrMass is Lock with a Global escalation.
func LockOrMass[T any](m *guard.Mutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(escalate.Global, OpLock, err, 1)
	}
}

func LockWith[T any](p escalate.Policy, m *guard.Mutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(p, OpLock, err, 1)
	}
}

// RLock acquires m shared and calls fn with a copy of the value.
func RLock[T any](m *guard.RWMutex[T], fn func(v T)) {
	if err := m.RLock(fn); err != nil {
		escalate.EscalateSkip(escalate.Local, OpRLock, err, 1)
	}
}

func RLockOrMass[T any](m *guard.RWMutex[T], fn func(v T)) {
	if err := m.RLock(fn); err != nil {
		escalate.EscalateSkip(escalate.Global, OpRLock, err, 1)
	}
}

func RLockWith[T any](p escalate.Policy, m *guard.RWMutex[T], fn func(v T)) {
	if err := m.RLock(fn); err != nil {
		escalate.EscalateSkip(p, OpRLock, err, 1)
	}
}

// WLock acquires m exclusively and calls fn.
func WLock[T any](m *guard.RWMutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(escalate.Local, OpWLock, err, 1)
	}
}

func WLockOrMass[T any](m *guard.RWMutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(escalate.Global, OpWLock, err, 1)
	}
}

func WLockWith[T any](p escalate.Policy, m *guard.RWMutex[T], fn func(v *T)) {
	if err := m.Lock(fn); err != nil {
		escalate.EscalateSkip(p, OpWLock, err, 1)
	}
}

// Send sends msg on tx. A disconnected channel escalates locally.
func Send[M any](tx *chanx.Sender[M], msg M) {
	if err := tx.Send(msg); err != nil {
		escalate.EscalateSkip(escalate.Local, OpSend, err, 1)
	}
}

func SendOrMass[M any](tx *chanx.Sender[M], msg M) {
	if err := tx.Send(msg); err != nil {
		escalate.EscalateSkip(escalate.Global, OpSend, err, 1)
	}
}

func SendWith[M any](p escalate.Policy, tx *chanx.Sender[M], msg M) {
	if err := tx.Send(msg); err != nil {
		escalate.EscalateSkip(p, OpSend, err, 1)
	}
}

// Recv receives from rx. A disconnected channel escalates locally.
func Recv[M any](rx *chanx.Receiver[M]) M {
	msg, err := rx.Recv()
	if err != nil {
		escalate.EscalateSkip(escalate.Local, OpRecv, err, 1)
	}
	return msg
}

func RecvOrMass[M any](rx *chanx.Receiver[M]) M {
	msg, err := rx.Recv()
	if err != nil {
		escalate.EscalateSkip(escalate.Global, OpRecv, err, 1)
	}
	return msg
}

func RecvWith[M any](p escalate.Policy, rx *chanx.Receiver[M]) M {
	msg, err := rx.Recv()
	if err != nil {
		escalate.EscalateSkip(p, OpRecv, err, 1)
	}
	return msg
}
