package tasklist

import (
	"fmt"
	"time"
)

// displayLayout renders schedule times on a 24-hour clock.
const displayLayout = "15:04"

// Task represents one entry of the daily task list: a description with an
// optional time-of-day anchored to the current calendar day. Tasks are
// immutable values — the parser is the only place they are built from user
// input, and it never constructs one with an empty description.
type Task struct {
	at    time.Time
	timed bool
	desc  string
}

// NewUntimed builds a task with no fixed time. The description must already
// be trimmed and non-empty.
func NewUntimed(desc string) Task {
	return Task{desc: desc}
}

// NewTimed builds a task scheduled at the given wall-clock instant.
// The description must already be trimmed and non-empty.
func NewTimed(at time.Time, desc string) Task {
	return Task{at: at, timed: true, desc: desc}
}

// Timed reports whether the task has a fixed time-of-day.
func (t Task) Timed() bool {
	return t.timed
}

// Time returns the scheduled instant, or the zero time for untimed tasks.
func (t Task) Time() time.Time {
	return t.at
}

// Description returns the task text.
func (t Task) Description() string {
	return t.desc
}

// String renders the task for display: "HH:MM -- description" when timed,
// otherwise the bare description.
func (t Task) String() string {
	desc := t.desc
	if desc == "" {
		desc = "n/a"
	}
	if !t.timed {
		return desc
	}
	return fmt.Sprintf("%s -- %s", t.at.Format(displayLayout), desc)
}
