package debtbook

import "github.com/shopspring/decimal"

// paidOffEpsilon is the residual balance below which a debt counts as
// cleared. Rounding during payments can leave a few sub-cent leftovers.
var paidOffEpsilon = decimal.NewFromFloat(0.01)

// Debt is a single liability with a shrinking balance.
//
// Its balance only ever decreases after creation: payments clamp at zero
// and negative payment amounts are rejected.
type Debt struct {
	Name       string  // display name, unique within a user's book by convention only
	Balance    Money   // outstanding amount, never negative
	Rate       Percent // annual interest rate in percentage points
	MinPayment Money   // minimum payment per period
}

// NewDebt creates a debt after validating its fields. The amount and the
// minimum payment must not be negative and the name must not be empty.
func NewDebt(name string, balance Money, rate Percent, minPayment Money) (Debt, error) {
	if name == "" {
		return Debt{}, &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if balance.IsNegative() {
		return Debt{}, &ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	if minPayment.IsNegative() {
		return Debt{}, &ValidationError{Field: "minimum payment", Msg: "must not be negative"}
	}
	return Debt{Name: name, Balance: balance, Rate: rate, MinPayment: minPayment}, nil
}

// ApplyPayment reduces the balance by amount, clamping at zero when the
// payment exceeds the outstanding balance. Negative amounts are rejected
// with a ValidationError so the balance can never grow.
func (d *Debt) ApplyPayment(amount Money) error {
	if amount.IsNegative() {
		return &ValidationError{Field: "payment", Msg: "must not be negative"}
	}
	balance := d.Balance.Sub(amount)
	if balance.IsNegative() {
		balance = balance.Zero()
	}
	d.Balance = balance
	return nil
}

// IsPaidOff reports whether the balance has shrunk below the paid-off
// epsilon. A paid-off debt stays in its collection until the caller
// explicitly removes it.
func (d Debt) IsPaidOff() bool {
	return d.Balance.value.LessThanOrEqual(paidOffEpsilon)
}

// Equal reports value equality of two debts.
func (d Debt) Equal(e Debt) bool {
	return d.Name == e.Name &&
		d.Balance.Equal(e.Balance) &&
		d.Rate.Equal(e.Rate) &&
		d.MinPayment.Equal(e.MinPayment)
}
