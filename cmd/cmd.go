// Package cmd implements the tasksched command-line interface.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/HBelusca/tasksched/cmd/common"
)

// BuildArgs carries build-time version information injected by the linker.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// Execute runs the tasksched CLI with the given process arguments.
func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "tasksched",
		HelpName:              "tasksched",
		Usage:                 "A daily task lister and scheduler.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "tasksched <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "print today's task list",
				ArgsUsage:              "[tasklistfile]",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:                   "run",
				Aliases:                []string{"r"},
				Usage:                  "execute today's schedule in real time",
				ArgsUsage:              "[tasklistfile]",
				Action:                 run,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            RunDescription,
				UseShortOptionHandling: true,
				Flags:                  runFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of tasksched",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 list,
		Flags:                  lsFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
