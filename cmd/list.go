package cmd

import (
	"github.com/urfave/cli"

	"github.com/HBelusca/tasksched/internal/scheduler"
)

// list prints today's plan. With --run it behaves like the run command, so
// "tasksched -r myday.txt" works without naming a subcommand.
func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	mode := scheduler.ModeList
	if runMode {
		mode = scheduler.ModeRun
	}
	return schedule(ctx, mode)
}
