package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

// captureOutput captures stdout and stderr during function execution.
// It redirects os.Stdout and os.Stderr to pipes, runs the provided function,
// and returns the captured output as strings.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var bufOut, bufErr bytes.Buffer
	io.Copy(&bufOut, rOut)
	io.Copy(&bufErr, rErr)
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to not contain %q, got:\n%s", notExpected, output)
	}
}

// withTaskFile installs an in-memory filesystem holding the given task list
// and stubs the CLI exiter so exit-coded errors do not kill the test binary.
// Both are restored when the test finishes.
func withTaskFile(t *testing.T, name, content string) {
	t.Helper()

	oldFs := appFs
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	appFs = fs

	oldExiter := cli.OsExiter
	cli.OsExiter = func(int) {}

	t.Cleanup(func() {
		appFs = oldFs
		cli.OsExiter = oldExiter
	})
}

// execute runs the CLI with test build args and returns the captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var err error
	stdout, _ := captureOutput(func() {
		err = Execute(append([]string{"tasksched"}, args...),
			BuildArgs{Version: "1", BuildType: "test"})
	})
	return stdout, err
}
