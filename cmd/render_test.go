package cmd

import (
	"strings"
	"testing"

	"github.com/kgoulet/debtbook"
)

func testDebt(t *testing.T, name string, balance, rate, minPay float64) debtbook.Debt {
	t.Helper()
	d, err := debtbook.NewDebt(name, debtbook.M(balance, "USD"), debtbook.Percent(rate), debtbook.M(minPay, "USD"))
	if err != nil {
		t.Fatalf("NewDebt(%q) returned an unexpected error: %v", name, err)
	}
	return d
}

func TestDebtsMarkdown(t *testing.T) {
	debts := []debtbook.Debt{
		testDebt(t, "Loan B", 5000, 5, 100),
		testDebt(t, "Card A", 1000, 20, 50),
	}

	got := DebtsMarkdown("Debts", debts, 5000)

	if !strings.Contains(got, "# Debts") {
		t.Errorf("missing title in:\n%s", got)
	}
	for _, name := range []string{"Loan B", "Card A"} {
		if !strings.Contains(got, name) {
			t.Errorf("missing debt %q in:\n%s", name, got)
		}
	}
	// The top-of-priority debt is bolded.
	if !strings.Contains(got, "**Loan B**") {
		t.Errorf("the top debt should be bold in:\n%s", got)
	}
	if strings.Contains(got, "**Card A**") {
		t.Errorf("only the top debt should be bold in:\n%s", got)
	}
}

func TestDebtsMarkdown_Empty(t *testing.T) {
	got := DebtsMarkdown("Debts", nil, 1.0)
	if !strings.Contains(got, "No debts recorded.") {
		t.Errorf("empty rendering should say so, got:\n%s", got)
	}
}

func TestWeightBar(t *testing.T) {
	testCases := []struct {
		name    string
		balance float64
		max     float64
		want    int // bar length in steps
	}{
		{name: "full", balance: 1000, max: 1000, want: 10},
		{name: "half", balance: 500, max: 1000, want: 5},
		{name: "tiny rounds up", balance: 60, max: 1000, want: 1},
		{name: "zero", balance: 0, max: 1000, want: 0},
		{name: "zero max falls back", balance: 0, max: 0, want: 0},
		{name: "over max caps", balance: 2000, max: 1000, want: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := weightBar(tc.balance, tc.max)
			if n := strings.Count(got, "█"); n != tc.want {
				t.Errorf("weightBar(%v, %v) = %q (%d steps), want %d", tc.balance, tc.max, got, n, tc.want)
			}
		})
	}
}
