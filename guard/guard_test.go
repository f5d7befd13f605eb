package guard

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMutex_Lock(t *testing.T) {
	m := NewMutex(1)

	err := m.Lock(func(v *int) { *v += 41 })
	require.NoError(t, err)

	var got int
	require.NoError(t, m.Lock(func(v *int) { got = *v }))
	assert.Equal(t, 42, got)
	assert.False(t, m.IsPoisoned())
}

func TestMutex_Lock_exclusive(t *testing.T) {
	m := NewMutex(0)
	var holders, maxHolders atomic.Int32

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			return m.Lock(func(v *int) {
				n := holders.Add(1)
				if n > maxHolders.Load() {
					maxHolders.Store(n)
				}
				*v++
				runtime.Gosched()
				holders.Add(-1)
			})
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), maxHolders.Load())
	require.NoError(t, m.Lock(func(v *int) { assert.Equal(t, 50, *v) }))
}

func TestMutex_Lock_secondWaitsForRelease(t *testing.T) {
	m := NewMutex("")
	held := make(chan struct{})
	release := make(chan struct{})
	var entered atomic.Bool

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = m.Lock(func(v *string) {
			close(held)
			<-release
			*v = "first"
		})
	}()
	<-held
	go func() {
		defer wg.Done()
		_ = m.Lock(func(v *string) {
			entered.Store(true)
			assert.Equal(t, "first", *v)
		})
	}()

	time.Sleep(20 * time.Millisecond)
	assert.False(t, entered.Load(), "second holder entered while the first held the lock")
	close(release)
	wg.Wait()
	assert.True(t, entered.Load())
}

func TestMutex_Lock_poisonedByPanic(t *testing.T) {
	m := NewMutex(0)

	assert.PanicsWithValue(t, "oops", func() {
		_ = m.Lock(func(v *int) {
			*v = 1
			panic("oops")
		})
	})

	assert.True(t, m.IsPoisoned())
	assert.ErrorIs(t, m.Lock(func(*int) { t.Error("fn called on a poisoned mutex") }), ErrPoisoned)

	// Every later acquisition, from any goroutine, observes the poison.
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			return m.Lock(func(*int) {})
		})
	}
	assert.ErrorIs(t, g.Wait(), ErrPoisoned)
}

func TestMutex_Lock_poisonedByGoexit(t *testing.T) {
	m := NewMutex(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = m.Lock(func(*int) {
			runtime.Goexit()
		})
	}()
	<-done

	assert.True(t, m.IsPoisoned())
	assert.ErrorIs(t, m.Lock(func(*int) {}), ErrPoisoned)
}

func TestRWMutex_RLock_overlap(t *testing.T) {
	m := NewRWMutex(7)
	first := make(chan struct{})
	second := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		return m.RLock(func(v int) {
			close(first)
			<-second
		})
	})
	g.Go(func() error {
		<-first
		return m.RLock(func(v int) {
			assert.Equal(t, 7, v)
			close(second)
		})
	})
	require.NoError(t, g.Wait())
}

func TestRWMutex_writerExcludesReaders(t *testing.T) {
	m := NewRWMutex(0)
	var readers, writers atomic.Int32

	var g errgroup.Group
	for i := 0; i < 40; i++ {
		if i%4 == 0 {
			g.Go(func() error {
				return m.Lock(func(v *int) {
					writers.Add(1)
					assert.Zero(t, readers.Load())
					*v++
					runtime.Gosched()
					writers.Add(-1)
				})
			})
			continue
		}
		g.Go(func() error {
			return m.RLock(func(int) {
				readers.Add(1)
				assert.Zero(t, writers.Load())
				runtime.Gosched()
				readers.Add(-1)
			})
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, m.RLock(func(v int) { assert.Equal(t, 10, v) }))
}

func TestRWMutex_poison(t *testing.T) {
	m := NewRWMutex([]int{1})

	assert.Panics(t, func() {
		_ = m.RLock(func([]int) { panic("reader") })
	})
	assert.False(t, m.IsPoisoned(), "a panicking reader must not poison")

	assert.Panics(t, func() {
		_ = m.Lock(func(v *[]int) { panic("writer") })
	})
	assert.True(t, m.IsPoisoned())
	assert.ErrorIs(t, m.RLock(func([]int) {}), ErrPoisoned)
	assert.ErrorIs(t, m.Lock(func(*[]int) {}), ErrPoisoned)
}

func TestRWMutex_RLock_shallowCopy(t *testing.T) {
	type config struct {
		name string
		tags map[string]string
	}
	m := NewRWMutex(config{name: "a", tags: map[string]string{}})

	require.NoError(t, m.RLock(func(v config) {
		v.name = "b"
		v.tags["k"] = "v"
	}))

	require.NoError(t, m.RLock(func(v config) {
		assert.Equal(t, "a", v.name)
		// the map is shared with the guarded value
		assert.Equal(t, "v", v.tags["k"])
	}))
}
