package cmd

import (
	"github.com/urfave/cli"

	"github.com/HBelusca/tasksched/internal/scheduler"
)

func run(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	return schedule(ctx, scheduler.ModeRun)
}
