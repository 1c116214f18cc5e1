package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type popCmd struct {
	username string
	password string
	strategy string
}

func (*popCmd) Name() string     { return "pop" }
func (*popCmd) Synopsis() string { return "remove the top-of-priority debt" }
func (*popCmd) Usage() string {
	return `dbk pop -u <username> -p <password> [-s avalanche|snowball]

  Removes the debt the active strategy ranks first. A popped debt that is
  paid off is retained in the paid-off set for historical display.
`
}

func (p *popCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.strategy, "s", "", "Ordering strategy: avalanche or snowball.")
}

func (p *popCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	popped := c.PopTopDebt()
	if popped == nil {
		fmt.Println("No debts recorded.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed %q.\n", popped.Name)
	if popped.IsPaidOff() {
		fmt.Println("It was paid off and is kept in the paid-off set.")
	}
	return subcommands.ExitSuccess
}
