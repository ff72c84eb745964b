package cmd

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/HBelusca/tasksched/internal/scheduler"
)

// barTick is how often the countdown display refreshes.
const barTick = time.Second

// countdownClock decorates a scheduler.Clock with an mpb progress bar, so
// run-mode waits show how far away the next task is. The underlying clock
// still does the waiting; the wrapper only slices the wait into ticks to
// advance the bar, always recomputing against the absolute deadline.
type countdownClock struct {
	clock scheduler.Clock
	out   io.Writer
}

func newCountdownClock(clock scheduler.Clock, out io.Writer) *countdownClock {
	return &countdownClock{clock: clock, out: out}
}

func (c *countdownClock) Now() time.Time { return c.clock.Now() }

// WaitUntil blocks until the wall clock reaches deadline, rendering a
// one-second-resolution countdown bar. Deadlines already due skip the bar
// entirely and defer to the underlying clock.
func (c *countdownClock) WaitUntil(deadline time.Time) {
	total := int64(deadline.Sub(c.clock.Now()) / time.Second)
	if total <= 0 {
		c.clock.WaitUntil(deadline)
		return
	}

	p := mpb.New(mpb.WithOutput(c.out), mpb.WithWidth(40))
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	bar := p.New(total,
		barStyle,
		mpb.PrependDecorators(
			decor.Name("Waiting", decor.WC{W: len("Waiting") + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.CountersNoUnit("%d / %d s"), "due"),
		),
	)

	for {
		remaining := deadline.Sub(c.clock.Now())
		if remaining <= 0 {
			break
		}
		step := remaining
		if step > barTick {
			step = barTick
		}
		c.clock.WaitUntil(c.clock.Now().Add(step))
		bar.SetCurrent(total - int64(deadline.Sub(c.clock.Now())/time.Second))
	}
	bar.SetCurrent(total)
	p.Wait()
}
