// Package guard provides mutexes that own the value they protect and become poisoned
// when a holder terminates abnormally.
//
// A holder terminates abnormally when the critical section panics or calls
// runtime.Goexit. The panic is not recovered: it keeps unwinding the holder's
// goroutine, the lock is released, and every later acquisition reports ErrPoisoned.
// Poisoning is permanent.
package guard

import (
	"errors"
	"sync"
	"sync/atomic"
)

var ErrPoisoned = errors.New("lock poisoned: a previous holder terminated abnormally")

// Mutex is a mutual exclusion lock around a value of type T.
//
// A Mutex must not be copied after first use.
type Mutex[T any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	value    T
}

func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock blocks until the lock is available, then calls fn with the protected value.
// The lock is released when fn returns, panics or exits the goroutine.
func (m *Mutex[T]) Lock(fn func(v *T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.poisoned.Load() {
		return ErrPoisoned
	}
	hold(&m.poisoned, func() { fn(&m.value) })
	return nil
}

func (m *Mutex[T]) IsPoisoned() bool {
	return m.poisoned.Load()
}

// RWMutex is a reader/writer lock around a value of type T.
// Only writers poison it; a panicking reader does not.
//
// An RWMutex must not be copied after first use.
type RWMutex[T any] struct {
	mu       sync.RWMutex
	poisoned atomic.Bool
	value    T
}

func NewRWMutex[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{value: value}
}

// RLock calls fn with a copy of the protected value while holding a shared lock.
//
// The copy is shallow. If T is or contains a map, slice or pointer, fn can
// reach the shared state through it while other readers hold the lock, so it
// must only read through such references. Use Lock to mutate.
func (m *RWMutex[T]) RLock(fn func(v T)) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.poisoned.Load() {
		return ErrPoisoned
	}
	fn(m.value)
	return nil
}

// Lock calls fn with the protected value while holding the exclusive lock.
func (m *RWMutex[T]) Lock(fn func(v *T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.poisoned.Load() {
		return ErrPoisoned
	}
	hold(&m.poisoned, func() { fn(&m.value) })
	return nil
}

func (m *RWMutex[T]) IsPoisoned() bool {
	return m.poisoned.Load()
}

// hold runs fn and marks poisoned unless fn returns normally.
func hold(poisoned *atomic.Bool, fn func()) {
	normal := false
	defer func() {
		if !normal {
			poisoned.Store(true)
		}
	}()
	fn()
	normal = true
}
