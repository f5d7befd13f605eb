// Package chanx provides a channel with clonable sender and receiver handles that
// reports disconnection instead of blocking forever or panicking.
//
// The channel is disconnected for senders once every Receiver is closed, and for
// receivers once every Sender is closed and the buffer has been drained.
// Disconnection is permanent.
package chanx

import (
	"errors"
	"sync/atomic"
)

var ErrDisconnected = errors.New("channel disconnected: no peer endpoint remains")

type shared[M any] struct {
	ch chan M

	senders   atomic.Int64
	receivers atomic.Int64

	// closed when the respective count drops to zero
	txGone chan struct{}
	rxGone chan struct{}
}

// New creates a channel with the given buffer capacity. A size of 0 makes
// every Send wait for a matching Recv.
func New[M any](size int) (*Sender[M], *Receiver[M]) {
	if size < 0 {
		panic("chanx: negative buffer size")
	}
	s := &shared[M]{
		ch:     make(chan M, size),
		txGone: make(chan struct{}),
		rxGone: make(chan struct{}),
	}
	s.senders.Store(1)
	s.receivers.Store(1)
	return &Sender[M]{s: s}, &Receiver[M]{s: s}
}

// Sender is the sending half of a channel. Use Clone for additional senders.
type Sender[M any] struct {
	s      *shared[M]
	closed atomic.Bool
}

// Send enqueues m, blocking while the buffer is full.
// It returns ErrDisconnected if every receiver is closed.
func (tx *Sender[M]) Send(m M) error {
	if tx.closed.Load() {
		panic("chanx: send on closed Sender")
	}
	select {
	case <-tx.s.rxGone:
		return ErrDisconnected
	default:
	}
	select {
	case tx.s.ch <- m:
		return nil
	case <-tx.s.rxGone:
		return ErrDisconnected
	}
}

// Clone returns a new Sender for the same channel.
func (tx *Sender[M]) Clone() *Sender[M] {
	if tx.closed.Load() || !retain(&tx.s.senders) {
		panic("chanx: clone of closed Sender")
	}
	return &Sender[M]{s: tx.s}
}

// Close releases this handle. Closing the last Sender disconnects the receivers.
func (tx *Sender[M]) Close() {
	if !tx.closed.CompareAndSwap(false, true) {
		return
	}
	if tx.s.senders.Add(-1) == 0 {
		close(tx.s.txGone)
	}
}

// Receiver is the receiving half of a channel. Use Clone for additional receivers;
// each message is delivered to exactly one of them.
type Receiver[M any] struct {
	s      *shared[M]
	closed atomic.Bool
}

// Recv blocks until a message is available. It returns ErrDisconnected once every
// sender is closed and no buffered message remains.
func (rx *Receiver[M]) Recv() (M, error) {
	if rx.closed.Load() {
		panic("chanx: receive on closed Receiver")
	}
	select {
	case m := <-rx.s.ch:
		return m, nil
	case <-rx.s.txGone:
		// Messages sent before the last sender closed are still delivered.
		select {
		case m := <-rx.s.ch:
			return m, nil
		default:
			var zero M
			return zero, ErrDisconnected
		}
	}
}

func (rx *Receiver[M]) Clone() *Receiver[M] {
	if rx.closed.Load() || !retain(&rx.s.receivers) {
		panic("chanx: clone of closed Receiver")
	}
	return &Receiver[M]{s: rx.s}
}

// Close releases this handle. Closing the last Receiver disconnects the senders.
func (rx *Receiver[M]) Close() {
	if !rx.closed.CompareAndSwap(false, true) {
		return
	}
	if rx.s.receivers.Add(-1) == 0 {
		close(rx.s.rxGone)
	}
}

// retain increments n unless it already dropped to zero. A count that reached
// zero has closed its gone channel and must stay at zero.
func retain(n *atomic.Int64) bool {
	for {
		c := n.Load()
		if c <= 0 {
			return false
		}
		if n.CompareAndSwap(c, c+1) {
			return true
		}
	}
}
