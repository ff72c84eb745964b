package scheduler

import "time"

// maxSleepCap bounds a single sleep so NTP steps, DST transitions, and
// system sleep (macOS pauses the monotonic clock) cannot strand a wait far
// past its deadline.
const maxSleepCap = 60 * time.Second

// Clock abstracts wall-clock access. Run mode waits through it, which keeps
// tests from sleeping and lets callers decorate waits with progress display.
type Clock interface {
	Now() time.Time

	// WaitUntil blocks until the wall clock reaches t. Deadlines already
	// in the past return immediately.
	WaitUntil(t time.Time)
}

// WallClock is the production Clock, backed by the system clock.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// WaitUntil sleeps against the absolute deadline, re-reading the wall clock
// each wake-up. Time spent formatting output between tasks therefore never
// accumulates as drift.
func (WallClock) WaitUntil(t time.Time) {
	for {
		d := time.Until(t)
		if d <= 0 {
			return
		}
		if d > maxSleepCap {
			d = maxSleepCap
		}
		time.Sleep(d)
	}
}
