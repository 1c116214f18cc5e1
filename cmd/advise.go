package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kgoulet/debtbook"
	"google.golang.org/genai"
)

// adviseModel is the Gemini model consulted for payoff advice.
const adviseModel = "gemini-2.5-flash"

type adviseCmd struct {
	username string
	password string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor for a payoff plan" }
func (*adviseCmd) Usage() string {
	return `dbk advise -u <username> -p <password>

  Sends the current debt collection to Gemini and prints a suggested
  payoff plan comparing the avalanche and snowball strategies. Requires
  a configured Gemini API key in the environment.
`
}

func (p *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username.")
	f.StringVar(&p.password, "p", "", "Password.")
}

func (p *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := openSession(p.username, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer c.Logout()

	debts := c.Snapshot()
	if len(debts) == 0 {
		fmt.Println("No debts to advise on.")
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, adviseModel, genai.Text(advisePrompt(debts)), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking for advice:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}

// advisePrompt renders the debts into a prompt asking for a comparison of
// the two payoff strategies.
func advisePrompt(debts []debtbook.Debt) string {
	var b strings.Builder
	b.WriteString("You are a personal finance advisor. Here are my outstanding debts:\n\n")
	for _, d := range debts {
		fmt.Fprintf(&b, "- %s: balance %s, interest rate %s, minimum payment %s\n",
			d.Name, d.Balance, d.Rate, d.MinPayment)
	}
	b.WriteString("\nCompare the avalanche and snowball payoff strategies for this collection, ")
	b.WriteString("recommend one, and outline a month-by-month plan in markdown. Be concise.")
	return b.String()
}
