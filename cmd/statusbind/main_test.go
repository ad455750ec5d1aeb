package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCLIHelp(t *testing.T) {
	out, err := execute(t, "help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, sub := range []string{"call", "check", "repl"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("help output missing %q:\n%s", sub, out)
		}
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	_, err := execute(t, "unknown")
	if err == nil {
		t.Fatalf("expected unknown command error")
	}
	if !strings.Contains(err.Error(), `unknown command "unknown"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	_, err := execute(t)
	if err == nil || !strings.Contains(err.Error(), "command required") {
		t.Fatalf("expected command required error, got %v", err)
	}
}

func TestCallCommandPrintsResults(t *testing.T) {
	out, err := execute(t, "call", "return_value_status_or(42)", `make_status(:not_found, "gone")`)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "42" || lines[1] != "Status(NOT_FOUND: gone)" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCallCommandReportsRaisedException(t *testing.T) {
	_, err := execute(t, "call", `return_status(:aborted, "stop")`)
	if err == nil {
		t.Fatalf("expected raised exception to fail the command")
	}
	if !strings.Contains(err.Error(), "StatusNotOk: stop [ABORTED]") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCallCommandSelectsModule(t *testing.T) {
	out, err := execute(t, "call", "--module", "status_testing", "call_callback_with_status_return(ok_status)")
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != `"OK"` {
		t.Fatalf("unexpected output: %q", got)
	}

	if _, err := execute(t, "call", "--module", "missing", "1"); err == nil {
		t.Fatalf("expected unknown module error")
	}
}

func TestCallCommandRecursionLimit(t *testing.T) {
	out, err := execute(t, "call", "--module", "status_testing", "--recursion-limit", "1",
		"call_callback_with_status_return(ok_status)")
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	want := `"UNKNOWN: RecursionError: maximum recursion depth exceeded (1)"`
	if got := strings.TrimSpace(out); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestCallCommandRequiresExpression(t *testing.T) {
	_, err := execute(t, "call")
	if err == nil || !strings.Contains(err.Error(), "requires at least 1 arg") {
		t.Fatalf("expected argument error, got %v", err)
	}
}
