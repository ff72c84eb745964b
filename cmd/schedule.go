package cmd

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/HBelusca/tasksched/cmd/common"
	"github.com/HBelusca/tasksched/internal/scheduler"
	"github.com/HBelusca/tasksched/internal/tasklist"
	"github.com/HBelusca/tasksched/pkg/logger"
)

// schedule is the shared pipeline behind the list and run commands: resolve
// the input source, parse, classify, then hand both buckets to the runner.
func schedule(ctx *cli.Context, mode scheduler.Mode) error {
	path := taskFile
	if path == "" {
		path = ctx.Args().First()
	}
	src, err := openTaskList(appFs, path, os.Stdin)
	if err != nil {
		common.PrintRuntimeErr(ctx, ctx.Command.Name, "open_input", err)
		return cli.NewExitError("", 1)
	}
	defer src.Close()

	now := time.Now()
	tasks, err := tasklist.ParseAll(src, now)
	if err != nil {
		common.PrintRuntimeErr(ctx, ctx.Command.Name, "read_input", err)
		return cli.NewExitError("", 1)
	}
	untimed, timed := tasklist.Partition(tasks)

	var lg logger.Logger = logger.NewNopLogger()
	var clock scheduler.Clock = scheduler.WallClock{}
	if !quiet {
		lg = logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
		if mode == scheduler.ModeRun {
			clock = newCountdownClock(clock, os.Stderr)
		}
	}
	if len(tasks) == 0 {
		lg.Warning("task list is empty")
	}

	r := &scheduler.Runner{
		Out:      os.Stdout,
		Clock:    clock,
		Log:      lg,
		DateLine: headerDate(now),
	}
	if err := r.Run(mode, untimed, timed); err != nil {
		common.PrintRuntimeErr(ctx, ctx.Command.Name, "order_tasks", err)
		return cli.NewExitError("", 1)
	}
	return nil
}

// headerDate renders the header date, or "" when disabled by --date=false.
func headerDate(now time.Time) string {
	if !showDate {
		return ""
	}
	return now.Format(dateLayout)
}
