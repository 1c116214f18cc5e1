// Package cmd implements the CLI application to manage a debt book.
package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kgoulet/debtbook"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "accounts")

	c.Register(&addCmd{}, "debts")
	c.Register(&payCmd{}, "debts")
	c.Register(&topCmd{}, "debts")
	c.Register(&popCmd{}, "debts")
	c.Register(&listCmd{}, "debts")

	c.Register(&adviseCmd{}, "advice")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the data directory (defaults to DEBTBOOK_DATA or .debtbook)")

// openController builds a controller over the configured data directory.
func openController() (*debtbook.Controller, error) {
	cfg, err := debtbook.LoadConfig()
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	logger := logrus.StandardLogger()
	store := debtbook.NewFileStore(cfg.DataDir, logger)
	return debtbook.NewController(store, logger, cfg.Currency), nil
}

// openSession opens a controller and logs the user in. Every subcommand
// invocation is its own short-lived session: login, operate, logout.
func openSession(username, password string) (*debtbook.Controller, error) {
	if username == "" || password == "" {
		return nil, errors.New("both -u and -p are required")
	}
	c, err := openController()
	if err != nil {
		return nil, err
	}
	if !c.Login(username, password) {
		return nil, fmt.Errorf("login failed for %q", username)
	}
	return c, nil
}

// applyStrategy parses a -s flag value and switches the schedule to it.
// The empty string keeps the default ordering.
func applyStrategy(c *debtbook.Controller, s string) error {
	if s == "" {
		return nil
	}
	strategy, err := debtbook.ParseStrategy(s)
	if err != nil {
		return err
	}
	c.SetStrategy(strategy)
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
