package tasklist

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var parseNow = time.Date(2021, time.March, 15, 10, 0, 0, 0, time.Local)

func mustParse(t *testing.T, line string) Task {
	t.Helper()
	task, ok := ParseLine(line, parseNow)
	if !ok {
		t.Fatalf("expected line %q to yield a task", line)
	}
	return task
}

func TestParseLine_TimedTask(t *testing.T) {
	task := mustParse(t, "6:00\tWake up")
	if !task.Timed() {
		t.Fatal("expected a timed task")
	}
	want := time.Date(2021, time.March, 15, 6, 0, 0, 0, time.Local)
	if !task.Time().Equal(want) {
		t.Errorf("expected time %v, got %v", want, task.Time())
	}
	if task.Description() != "Wake up" {
		t.Errorf("expected description %q, got %q", "Wake up", task.Description())
	}
}

func TestParseLine_TwoDigitHour(t *testing.T) {
	task := mustParse(t, "14:30 Meeting")
	want := time.Date(2021, time.March, 15, 14, 30, 0, 0, time.Local)
	if !task.Time().Equal(want) {
		t.Errorf("expected time %v, got %v", want, task.Time())
	}
}

func TestParseLine_LeadingWhitespaceAndTabs(t *testing.T) {
	task := mustParse(t, " \t 7:00 \t Breakfast ")
	if !task.Timed() {
		t.Fatal("expected a timed task")
	}
	if task.Description() != "Breakfast" {
		t.Errorf("expected description %q, got %q", "Breakfast", task.Description())
	}
}

func TestParseLine_InteriorWhitespacePreserved(t *testing.T) {
	task := mustParse(t, "9:00 Review  the   plan")
	if task.Description() != "Review  the   plan" {
		t.Errorf("interior whitespace should survive, got %q", task.Description())
	}
}

// A first token that fails time parsing downgrades the whole trimmed line to
// an untimed description, never an error.
func TestParseLine_FallbackToUntimed(t *testing.T) {
	lines := []string{
		"Buy groceries",
		"25:00 Nap",    // hour out of range
		"7:5 Tea",      // minutes need two digits
		"7.30 Stretch", // wrong separator
		"7:30pm Call",  // trailing garbage in token
	}
	for _, line := range lines {
		task, ok := ParseLine(line, parseNow)
		if !ok {
			t.Errorf("expected line %q to yield a task", line)
			continue
		}
		if task.Timed() {
			t.Errorf("expected line %q to yield an untimed task", line)
		}
		if want := strings.TrimSpace(line); task.Description() != want {
			t.Errorf("expected description %q, got %q", want, task.Description())
		}
	}
}

// Blank lines and bare time tokens yield no task at all.
func TestParseLine_SkippedLines(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"\t\t",
		"6:00",
		"6:00   \t",
	}
	for _, line := range lines {
		if _, ok := ParseLine(line, parseNow); ok {
			t.Errorf("expected line %q to be skipped", line)
		}
	}
}

func TestParseLine_SecondsForcedToZero(t *testing.T) {
	task := mustParse(t, "8:45 Coffee")
	if s := task.Time().Second(); s != 0 {
		t.Errorf("expected zero seconds, got %d", s)
	}
	if ns := task.Time().Nanosecond(); ns != 0 {
		t.Errorf("expected zero nanoseconds, got %d", ns)
	}
}

func TestParseAll_OrderAndSkips(t *testing.T) {
	input := "6:00\tWake up\n\nBuy groceries\n7:00\n7:00\tBreakfast\n"
	tasks, err := ParseAll(strings.NewReader(input), parseNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, task := range tasks {
		got = append(got, task.Description())
	}
	want := []string{"Wake up", "Buy groceries", "Breakfast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// Re-running the parser and classifier on the same input always yields the
// same partition and relative order.
func TestParseAll_Deterministic(t *testing.T) {
	input := "6:00 Wake up\nBuy groceries\n14:30 Meeting\nWater plants\n12:00 Lunch\n"

	run := func() (untimed, timed []string) {
		tasks, err := ParseAll(strings.NewReader(input), parseNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u, ti := Partition(tasks)
		for _, task := range u {
			untimed = append(untimed, task.Description())
		}
		for _, task := range ti {
			timed = append(timed, task.Description())
		}
		return untimed, timed
	}

	u1, t1 := run()
	u2, t2 := run()
	if !reflect.DeepEqual(u1, u2) || !reflect.DeepEqual(t1, t2) {
		t.Errorf("partition not deterministic: %v/%v vs %v/%v", u1, t1, u2, t2)
	}
	if want := []string{"Buy groceries", "Water plants"}; !reflect.DeepEqual(u1, want) {
		t.Errorf("expected untimed %v, got %v", want, u1)
	}
	if want := []string{"Wake up", "Meeting", "Lunch"}; !reflect.DeepEqual(t1, want) {
		t.Errorf("expected timed %v (input order), got %v", want, t1)
	}
}

func TestPartition_Empty(t *testing.T) {
	untimed, timed := Partition(nil)
	if len(untimed) != 0 || len(timed) != 0 {
		t.Errorf("expected empty buckets, got %v / %v", untimed, timed)
	}
}
