package debtbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a rejected user input. It is the only error kind
// surfaced for malformed amount, rate, or payment fields.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ParseAmount converts user-typed text into a decimal amount.
// Non-numeric text yields a ValidationError.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Msg: fmt.Sprintf("%q is not a number", s)}
	}
	return d, nil
}

// ParseRate converts user-typed text into an interest rate in percentage
// points. Non-numeric text yields a ValidationError.
func ParseRate(field, s string) (Percent, error) {
	d, err := ParseAmount(field, s)
	if err != nil {
		return 0, err
	}
	return Percent(d.InexactFloat64()), nil
}
