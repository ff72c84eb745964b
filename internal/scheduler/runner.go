// Package scheduler orders the day's timed tasks and walks the resulting
// plan, either as a plain listing or as a real-time run that waits for each
// task's scheduled wall-clock instant.
package scheduler

import (
	"fmt"
	"io"

	"github.com/HBelusca/tasksched/internal/tasklist"
	"github.com/HBelusca/tasksched/pkg/logger"
)

// Mode selects between enumerating the schedule and executing it in real time.
type Mode int

const (
	// ModeList prints the plan without waiting.
	ModeList Mode = iota
	// ModeRun walks the timed tasks in real time, suspending until each
	// one's scheduled instant.
	ModeRun
)

// User-facing text, shared by both modes.
const (
	headerPrefix  = "==== Tasks for Today"
	headerSuffix  = " ===="
	runModeMarker = "[Run mode]"

	untimedHeading = "To do:\n------"
	timedHeading   = "Scheduled tasks:\n----------------"

	allDoneMessage = "You have finished all your tasks, congratulations! You've earned it!"
	nothingToDoMsg = "Nothing to do today! Relax & enjoy!"
	doingPrefix    = "currently doing: "
	nextTaskPrefix = "the next task will be: "
)

// Runner walks the classified task buckets and writes the day's plan to Out.
//
// DateLine, when non-empty, is appended to the header; the caller owns its
// formatting so locale concerns stay out of the core. Clock defaults to
// WallClock and Log to the nop logger.
type Runner struct {
	Out      io.Writer
	Clock    Clock
	Log      logger.Logger
	DateLine string
}

// Run orders the timed bucket and walks both buckets in the given mode.
//
// A collision in the timed bucket aborts before anything is written; that is
// the only error this method can return, and it is the orderer's, unchanged.
func (r *Runner) Run(mode Mode, untimed, timed []tasklist.Task) error {
	ordered, err := Order(timed)
	if err != nil {
		return err
	}

	if r.Clock == nil {
		r.Clock = WallClock{}
	}
	if r.Log == nil {
		r.Log = logger.NewNopLogger()
	}

	r.announce(mode)
	r.emitSection(untimedHeading, untimed)
	if mode == ModeRun {
		r.execute(ordered)
	} else {
		r.emitSection(timedHeading, ordered)
	}

	if len(untimed)+len(ordered) > 0 {
		fmt.Fprintln(r.Out, allDoneMessage)
	} else {
		fmt.Fprintln(r.Out, nothingToDoMsg)
	}
	return nil
}

func (r *Runner) announce(mode Mode) {
	header := headerPrefix
	if r.DateLine != "" {
		header += ", " + r.DateLine
	}
	if mode == ModeRun {
		header += ", " + runModeMarker
	}
	header += headerSuffix
	fmt.Fprintln(r.Out, header)
	fmt.Fprintln(r.Out)
}

// emitSection prints a heading followed by one line per task. Empty buckets
// produce no section at all.
func (r *Runner) emitSection(heading string, tasks []tasklist.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintln(r.Out, heading)
	for _, t := range tasks {
		fmt.Fprintln(r.Out, t)
	}
	fmt.Fprintln(r.Out)
}

// execute walks the ordered timed queue in real time. The front task always
// starts immediately; the wait happens before the following one, against its
// absolute schedule time. Overdue deadlines return at once, so late tasks
// still run, just without delay.
func (r *Runner) execute(queue []tasklist.Task) {
	if len(queue) == 0 {
		return
	}
	fmt.Fprintln(r.Out, timedHeading)
	for len(queue) > 0 {
		fmt.Fprintf(r.Out, "%s%s\n", doingPrefix, queue[0])
		queue = queue[1:]
		if len(queue) == 0 {
			break
		}
		next := queue[0]
		fmt.Fprintf(r.Out, "%s%s\n", nextTaskPrefix, next)
		r.Log.Info("waiting until %s for %q", next.Time().Format("15:04"), next.Description())
		r.Clock.WaitUntil(next.Time())
	}
	fmt.Fprintln(r.Out)
}
