package cmd

import "github.com/urfave/cli"

var (
	taskFile string
	runMode  bool
	showDate bool
	quiet    bool
)

var lsFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "file, f",
		Usage:       "path of the task list file (reads standard input if omitted)",
		EnvVar:      "TASKSCHED_FILE",
		Destination: &taskFile,
	},
	cli.BoolFlag{
		Name:        "run, r",
		Usage:       "execute the schedule in real time instead of listing it",
		Destination: &runMode,
	},
	cli.BoolTFlag{
		Name:        "date, d",
		Usage:       "include today's date in the header (default: true)",
		Destination: &showDate,
	},
	cli.BoolFlag{
		Name:        "quiet, q",
		Usage:       "suppress info logging and the run-mode countdown",
		EnvVar:      "TASKSCHED_QUIET",
		Destination: &quiet,
	},
}

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "file, f",
		Usage:       "path of the task list file (reads standard input if omitted)",
		EnvVar:      "TASKSCHED_FILE",
		Destination: &taskFile,
	},
	cli.BoolTFlag{
		Name:        "date, d",
		Usage:       "include today's date in the header (default: true)",
		Destination: &showDate,
	},
	cli.BoolFlag{
		Name:        "quiet, q",
		Usage:       "suppress info logging and the run-mode countdown",
		EnvVar:      "TASKSCHED_QUIET",
		Destination: &quiet,
	},
}
