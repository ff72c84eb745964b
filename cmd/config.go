package cmd

// dateLayout formats the date shown in the schedule header.
const dateLayout = "Mon, Jan 2 2006"

const DESCRIPTION = `
Tasksched reads a plain-text list of daily tasks, one per line,
optionally prefixed with a 24-hour clock time (like "7:30").
It prints the day's plan with scheduled tasks in time order, and
in run mode executes the schedule in real time, waiting until
each task's scheduled time arrives.
`

const (
	ListDescription = `The list command prints today's task list: unscheduled
tasks first in file order, then scheduled tasks sorted
by their clock time.

The task list is read from the given file, or from the
standard input when no file is named.

Example:
        tasksched list myday.txt
					OR
        tasksched myday.txt

`
	RunDescription = `The run command walks today's schedule in real time.
Unscheduled tasks are printed first, then each scheduled
task starts at its clock time; tasksched waits in between
and shows a countdown towards the next task. Tasks whose
time has already passed start immediately.

Example:
        tasksched run myday.txt
					OR
        tasksched -r myday.txt

`
)
