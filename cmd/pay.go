package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kgoulet/debtbook"
)

type payCmd struct {
	username string
	password string
	amount   string
	strategy string
	pop      bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "apply a payment to the top-of-priority debt" }
func (*payCmd) Usage() string {
	return `dbk pay -u <username> -p <password> -a <amount> [-s avalanche|snowball] [-pop]

  Applies a payment against the debt the active strategy ranks first.
  The balance never goes below zero. With -pop, a debt that becomes paid
  off is removed from the active collection and retired to the paid-off
  set.
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.amount, "a", "", "Payment amount.")
	f.StringVar(&p.strategy, "s", "", "Ordering strategy: avalanche or snowball.")
	f.BoolVar(&p.pop, "pop", false, "Retire the top debt if the payment clears it.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := debtbook.ParseAmount("payment", p.amount)
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

	if err := applyStrategy(c, p.strategy); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	target := c.PeekTopDebt()
	if target == nil {
		fmt.Println("No debts to pay.")
		return subcommands.ExitSuccess
	}

	if err := c.ApplyPayment(amount); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Paid %s towards %q.\n", amount, target.Name)

	// Retiring a cleared debt is an explicit action: observe the top of
	// priority, then pop it when asked to.
	if top := c.PeekTopDebt(); top != nil && top.Name == target.Name && top.IsPaidOff() {
		fmt.Printf("%q is paid off.\n", top.Name)
		if p.pop {
			c.PopTopDebt()
			fmt.Printf("Retired %q to the paid-off set.\n", top.Name)
		}
	}

	return subcommands.ExitSuccess
}
