package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kgoulet/debtbook"
)

type addCmd struct {
	username string
	password string
	name     string
	amount   string
	rate     string
	minPay   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a debt to the book" }
func (*addCmd) Usage() string {
	return `dbk add -u <username> -p <password> -n <name> -a <amount> [-r <rate>] [-m <minimum payment>]

  Adds a debt to the active collection. The amount must not be negative,
  the rate is in percentage points.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.name, "n", "", "Debt name, e.g. 'Visa card'.")
	f.StringVar(&p.amount, "a", "", "Total amount owed.")
	f.StringVar(&p.rate, "r", "0", "Annual interest rate in percentage points.")
	f.StringVar(&p.minPay, "m", "0", "Minimum payment per period.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := debtbook.ParseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	rate, err := debtbook.ParseRate("rate", p.rate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	minPay, err := debtbook.ParseAmount("minimum payment", p.minPay)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	c, err := openSession(p.username, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer c.Logout()

	if err := c.PushDebt(p.name, amount, rate, minPay); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added debt %q.\n", p.name)
	return subcommands.ExitSuccess
}
