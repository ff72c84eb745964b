// Package tasklist parses plain-text task lists into Task values and
// partitions them by presence of a schedule time.
//
// The accepted line format is:
//
//	[H:MM or HH:MM] description
//
// where the leading 24-hour clock token is optional. Lines that are blank,
// or that carry a time token with nothing after it, yield no task.
package tasklist

import (
	"bufio"
	"io"
	"strings"
	"time"
)

// clockLayout parses the optional leading time token. The "15" verb accepts
// one- or two-digit hours, while "04" requires exactly two minute digits,
// matching the H:MM / HH:MM grammar.
const clockLayout = "15:04"

// lineCutset is the whitespace stripped around tokens and descriptions.
// Carriage returns show up when the list file has Windows line endings.
const lineCutset = " \t\r"

// ParseLine converts one raw text line into a Task. The returned bool is
// false when the line yields no task (blank line, or a bare time token with
// no description).
//
// When the first whitespace-delimited token parses as a clock time, it is
// anchored to now's calendar day with seconds forced to zero and the rest of
// the line becomes the description. When it does not parse, nothing is
// consumed and the whole trimmed line becomes an untimed description; a
// malformed time token is never an error.
func ParseLine(line string, now time.Time) (Task, bool) {
	rest := strings.TrimLeft(line, lineCutset)

	token := rest
	tail := ""
	if i := strings.IndexAny(rest, lineCutset); i >= 0 {
		token = rest[:i]
		tail = strings.TrimLeft(rest[i:], lineCutset)
	}

	if clock, err := time.ParseInLocation(clockLayout, token, now.Location()); err == nil {
		desc := strings.TrimRight(tail, lineCutset)
		if desc == "" {
			return Task{}, false
		}
		at := time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), 0, 0, now.Location())
		return NewTimed(at, desc), true
	}

	desc := strings.TrimRight(rest, lineCutset)
	if desc == "" {
		return Task{}, false
	}
	return NewUntimed(desc), true
}

// ParseAll reads the task list line by line until the reader is exhausted.
// Lines that yield no task are skipped silently. The only possible error
// comes from the reader itself.
func ParseAll(r io.Reader, now time.Time) ([]Task, error) {
	var tasks []Task
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		task, ok := ParseLine(sc.Text(), now)
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, sc.Err()
}
