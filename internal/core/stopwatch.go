package core

import (
	"fmt"
	"time"
)

// Stopwatch measures wall time since it was started.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

// NewStopwatch starts a stopwatch at the current time.
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(time.Now)
}

// NewStopwatchWithClock starts a stopwatch driven by now.
func NewStopwatchWithClock(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{start: now(), now: now}
}

// Elapsed returns the time since the stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// String formats the elapsed time as mm:ss:mmm.
func (s *Stopwatch) String() string {
	return FormatElapsed(s.Elapsed())
}

// FormatElapsed renders d as zero-padded minutes, seconds and milliseconds.
// Minutes are not wrapped into hours.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	millis := int((d % time.Second) / time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%03d", minutes, seconds, millis)
}
