package debtbook

import "fmt"

// Strategy defines the ordering policy applied to the active debt collection.
type Strategy int

const (
	// Avalanche orders debts by ascending interest rate: the debt with the
	// lowest rate ranks first.
	Avalanche Strategy = iota
	// Snowball orders debts by descending balance: the debt with the
	// largest balance ranks first.
	Snowball
)

func (s Strategy) String() string {
	switch s {
	case Avalanche:
		return "avalanche"
	case Snowball:
		return "snowball"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", s)
	}
}
