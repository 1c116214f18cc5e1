package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kgoulet/debtbook"
)

type registerCmd struct {
	fullName string
	email    string
	username string
	password string
	userType string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `dbk register -name <full name> -u <username> -p <password> [-email <email>] [-type debtor|advisor]

  Creates a new account. Usernames are unique; registering an existing
  username fails and leaves the existing account untouched.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.fullName, "name", "", "Full name of the account holder.")
	f.StringVar(&p.email, "email", "", "Email address (optional).")
	f.StringVar(&p.username, "u", "", "Username, the unique account key.")
	f.StringVar(&p.password, "p", "", "Password.")
	f.StringVar(&p.userType, "type", "debtor", "Account type: debtor or advisor.")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.username == "" || p.password == "" {
		fmt.Fprintln(os.Stderr, "Error: both -u and -p are required.")
		return subcommands.ExitUsageError
	}

	userType, err := debtbook.ParseUserType(p.userType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	c, err := openController()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.Register(p.fullName, p.email, p.username, p.password, userType) {
		fmt.Fprintf(os.Stderr, "Error: username %q is already taken.\n", p.username)
		return subcommands.ExitFailure
	}
	c.Logout()

	fmt.Printf("Registered %q as %s.\n", p.username, userType)
	return subcommands.ExitSuccess
}
