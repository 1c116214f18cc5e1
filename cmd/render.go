package cmd

import (
	"bytes"
	"strings"

	"github.com/kgoulet/debtbook"
	md "github.com/nao1215/markdown"
)

// DebtsMarkdown renders a debt sequence as a markdown table in priority
// order, index 0 on top. The weight bar is scaled against maxBalance.
func DebtsMarkdown(title string, debts []debtbook.Debt, maxBalance float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(debts) == 0 {
		doc.PlainText("No debts recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Name", "Balance", "Rate", "Min. Payment", "Weight"},
	}
	for i, d := range debts {
		name := d.Name
		if i == 0 {
			// the top-of-priority debt is the one to pay next.
			name = md.Bold(name)
		}
		table.Rows = append(table.Rows, []string{
			name,
			d.Balance.String(),
			d.Rate.String(),
			d.MinPayment.String(),
			weightBar(d.Balance.AsFloat(), maxBalance),
		})
	}
	doc.Table(table)

	return doc.String()
}

// DebtMarkdown renders a single debt as a one-line summary.
func DebtMarkdown(d debtbook.Debt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText(md.Bold(d.Name) + ": " + d.Balance.String() + " at " + d.Rate.String() + ", minimum payment " + d.MinPayment.String())
	return doc.String()
}

// weightBar draws a ten-step bar proportional to balance/max.
func weightBar(balance, max float64) string {
	if max <= 0 {
		max = 1
	}
	steps := int(10*balance/max + 0.5)
	if steps > 10 {
		steps = 10
	}
	return strings.Repeat("█", steps)
}
