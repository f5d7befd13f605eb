// Package thread provides sleep shorthands and worker-count heuristics based on the
// available parallelism.
package thread

import (
	"runtime"
	"time"
)

// Sleep pauses the current goroutine for millis milliseconds.
func Sleep(millis uint64) {
	time.Sleep(time.Duration(millis) * time.Millisecond)
}

func SleepSecs(secs uint64) {
	time.Sleep(time.Duration(secs) * time.Second)
}

// Threads returns the number of goroutines that can run in parallel: the smaller
// of GOMAXPROCS and the CPU count, and never less than 1.
func Threads() int {
	n := runtime.GOMAXPROCS(0)
	if cpus := runtime.NumCPU(); cpus < n {
		n = cpus
	}
	if n < 1 {
		return 1
	}
	return n
}

// Half returns 50% of Threads, rounded down. It returns 1 for 1 or 2 threads.
func Half() int { return half(Threads()) }

// Quarter returns 25% of Threads, rounded down. It returns 1 for 1 to 3 threads.
func Quarter() int { return quarter(Threads()) }

// Most returns 80% of Threads, rounded down. It returns 1, 1, 2 and 3 for
// 1 to 4 threads.
func Most() int { return most(Threads()) }

func half(n int) int {
	if n <= 2 {
		return 1
	}
	return n / 2
}

func quarter(n int) int {
	if n <= 3 {
		return 1
	}
	return n / 4
}

func most(n int) int {
	switch {
	case n <= 2:
		return 1
	case n == 3:
		return 2
	case n == 4:
		return 3
	}
	return n * 8 / 10
}
