package cmd

import (
	"bytes"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestEnqueueCommand_RejectsNonNumericID(t *testing.T) {
	out := execute(t, "enqueue", "not-a-number")
	if !bytes.Contains([]byte(out), []byte("Invalid post id")) {
		t.Errorf("expected invalid id message, got %q", out)
	}
}

func TestCancelCommand_RejectsNonNumericID(t *testing.T) {
	out := execute(t, "cancel", "abc")
	if !bytes.Contains([]byte(out), []byte("Invalid post id")) {
		t.Errorf("expected invalid id message, got %q", out)
	}
}

func TestDeleteCommand_RejectsNonNumericID(t *testing.T) {
	out := execute(t, "delete", "12.5x")
	if !bytes.Contains([]byte(out), []byte("Invalid post id")) {
		t.Errorf("expected invalid id message, got %q", out)
	}
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	out := execute(t, "--help")
	for _, name := range []string{"enqueue", "cancel", "status", "retry-failed", "delete", "check"} {
		if !bytes.Contains([]byte(out), []byte(name)) {
			t.Errorf("help output missing %q", name)
		}
	}
}
