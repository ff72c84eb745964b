package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// ErrTaskCollision is returned when two tasks with different descriptions
// share a schedule time.
var ErrTaskCollision = errors.New("task collision")

// CollisionError reports two distinct tasks scheduled at the same time.
// Silently picking one would hide a data-entry mistake in the task list,
// so the whole run aborts instead.
type CollisionError struct {
	At     time.Time
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %q and %q are both scheduled at %s",
		ErrTaskCollision.Error(), e.First, e.Second, e.At.Format("15:04"))
}

func (e *CollisionError) Unwrap() error {
	return ErrTaskCollision
}
