package commands

import (
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, c := range New().Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("%s command not registered", name)
	return nil
}

func TestDoneSilencesUsageOnRuntimeErrors(t *testing.T) {
	cmd := findCommand(t, "done")
	if err := cmd.Args(cmd, []string{"3"}); err != nil {
		t.Fatalf("args: %v", err)
	}
	// A valid invocation that later fails at runtime, like an
	// out-of-range task number, must not dump the usage text.
	if !cmd.SilenceUsage {
		t.Fatal("done must silence usage once the arguments parse")
	}
}

func TestDoneRejectsNonNumericArgs(t *testing.T) {
	cmd := findCommand(t, "done")
	if err := cmd.Args(cmd, []string{"three"}); err == nil {
		t.Fatal("expected an error for a non-numeric task number")
	}
}
