// Package timex provides elapsed-time shorthands and common durations.
package timex

import "time"

const (
	Second        = time.Second
	HalfSecond    = 500 * time.Millisecond
	ThirdSecond   = 333 * time.Millisecond
	QuarterSecond = 250 * time.Millisecond
	Minute        = time.Minute
)

// Secs returns the whole seconds elapsed since t.
func Secs(t time.Time) uint64 {
	return uint64(time.Since(t) / time.Second)
}

func SecsF64(t time.Time) float64 {
	return time.Since(t).Seconds()
}

func Millis(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}

func Micros(t time.Time) int64 {
	return time.Since(t).Microseconds()
}

func Nanos(t time.Time) int64 {
	return time.Since(t).Nanoseconds()
}

// Unix returns the seconds since the Unix epoch, or 0 if the clock is set before it.
func Unix() uint64 {
	return unix(time.Now())
}

func unix(now time.Time) uint64 {
	s := now.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}
