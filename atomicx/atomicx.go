// Package atomicx holds small helpers over sync/atomic.
package atomicx

import "sync/atomic"

// Flip inverts b in place and returns the previous value.
func Flip(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return old
		}
	}
}
