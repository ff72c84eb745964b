package scheduler

import (
	"sort"

	"github.com/HBelusca/tasksched/internal/tasklist"
)

// ordering is the tagged result of comparing two timed tasks.
type ordering int

const (
	orderedBefore ordering = iota
	orderedEqual
	orderedAfter
)

// compare orders two timed tasks by schedule time. Equal times are legal
// only for exact duplicates; a pair with differing descriptions is a
// collision and comes back as orderedEqual plus a *CollisionError.
func compare(a, b tasklist.Task) (ordering, error) {
	ta, tb := a.Time(), b.Time()
	switch {
	case ta.Before(tb):
		return orderedBefore, nil
	case tb.Before(ta):
		return orderedAfter, nil
	}
	if a.Description() != b.Description() {
		return orderedEqual, &CollisionError{
			At:     ta,
			First:  a.Description(),
			Second: b.Description(),
		}
	}
	return orderedEqual, nil
}

// Order returns the timed bucket sorted ascending by schedule time.
//
// The comparator checks the collision invariant on every equal comparison
// the sort performs, and exact duplicates survive with unspecified relative
// order (the sort is not stable on purpose). Because the sort is free to
// skip some equal pairs, a final adjacent-pair sweep re-checks the result:
// equal times end up adjacent in a totally ordered output, so the sweep sees
// every colliding pair the sort did not.
//
// On collision the error is returned and no ordering is produced. An empty
// bucket orders to an empty bucket.
func Order(timed []tasklist.Task) ([]tasklist.Task, error) {
	ordered := make([]tasklist.Task, len(timed))
	copy(ordered, timed)

	var collision error
	sort.Slice(ordered, func(i, j int) bool {
		ord, err := compare(ordered[i], ordered[j])
		if err != nil && collision == nil {
			collision = err
		}
		return ord == orderedBefore
	})
	if collision != nil {
		return nil, collision
	}

	for i := 1; i < len(ordered); i++ {
		if _, err := compare(ordered[i-1], ordered[i]); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
