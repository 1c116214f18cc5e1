package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type topCmd struct {
	username string
	password string
	strategy string
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "show the top-of-priority debt" }
func (*topCmd) Usage() string {
	return `dbk top -u <username> -p <password> [-s avalanche|snowball]

  Shows the debt the active strategy ranks first, without removing it.
`
}

func (p *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.strategy, "s", "", "Ordering strategy: avalanche or snowball.")
}

func (p *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	top := c.PeekTopDebt()
	if top == nil {
		fmt.Println("No debts recorded.")
		return subcommands.ExitSuccess
	}
	printMarkdown(DebtMarkdown(*top))
	return subcommands.ExitSuccess
}
