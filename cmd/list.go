package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct {
	username string
	password string
	strategy string
	paid     bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list debts in priority order" }
func (*listCmd) Usage() string {
	return `dbk list -u <username> -p <password> [-s avalanche|snowball] [-paid]

  Lists the active debts in priority order, the top-of-priority debt
  first. With -paid, lists the paid-off set instead.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.strategy, "s", "", "Ordering strategy: avalanche or snowball.")
	f.BoolVar(&p.paid, "paid", false, "List the paid-off set instead of the active debts.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := openSession(p.username, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer c.Logout()

	if err := applyStrategy(c, p.strategy); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if p.paid {
		printMarkdown(DebtsMarkdown("Paid-off debts", c.PaidOff(), c.MaxBalance()))
		return subcommands.ExitSuccess
	}
	printMarkdown(DebtsMarkdown("Debts", c.Snapshot(), c.MaxBalance()))
	return subcommands.ExitSuccess
}
