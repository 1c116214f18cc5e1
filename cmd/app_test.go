package cmd

import (
	"context"
	"flag"
	"io"
	"testing"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// useTempData points the commands at a throwaway data directory.
func useTempData(t *testing.T) {
	t.Helper()
	logrus.SetOutput(io.Discard)
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func execute(t *testing.T, cmd subcommands.Command) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	return cmd.Execute(context.Background(), f)
}

func TestCommands_RegisterAddList(t *testing.T) {
	useTempData(t)

	if got := execute(t, &registerCmd{fullName: "Joe Smith", username: "joe", password: "pw", userType: "debtor"}); got != subcommands.ExitSuccess {
		t.Fatalf("register = %v, want success", got)
	}
	// Registering the same username again fails.
	if got := execute(t, &registerCmd{fullName: "Impostor", username: "joe", password: "other", userType: "debtor"}); got != subcommands.ExitFailure {
		t.Errorf("duplicate register = %v, want failure", got)
	}

	if got := execute(t, &addCmd{username: "joe", password: "pw", name: "Card A", amount: "1000", rate: "20", minPay: "50"}); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", got)
	}
	if got := execute(t, &addCmd{username: "joe", password: "wrong", name: "Card B", amount: "10", rate: "1", minPay: "1"}); got != subcommands.ExitFailure {
		t.Errorf("add with a wrong password = %v, want failure", got)
	}
	if got := execute(t, &addCmd{username: "joe", password: "pw", name: "Card B", amount: "-10", rate: "1", minPay: "1"}); got == subcommands.ExitSuccess {
		t.Errorf("add with a negative amount = %v, want an error status", got)
	}

	if got := execute(t, &listCmd{username: "joe", password: "pw"}); got != subcommands.ExitSuccess {
		t.Errorf("list = %v, want success", got)
	}
	if got := execute(t, &listCmd{username: "joe", password: "pw", strategy: "snowball"}); got != subcommands.ExitSuccess {
		t.Errorf("list -s snowball = %v, want success", got)
	}
	if got := execute(t, &listCmd{username: "joe", password: "pw", strategy: "nonsense"}); got != subcommands.ExitUsageError {
		t.Errorf("list -s nonsense = %v, want a usage error", got)
	}
}

func TestCommands_MissingCredentials(t *testing.T) {
	useTempData(t)

	if got := execute(t, &registerCmd{fullName: "Joe"}); got != subcommands.ExitUsageError {
		t.Errorf("register without credentials = %v, want a usage error", got)
	}
	if got := execute(t, &addCmd{name: "Card A", amount: "100", rate: "1", minPay: "1"}); got != subcommands.ExitFailure {
		t.Errorf("add without credentials = %v, want failure", got)
	}
}
