package debtbook

import "sort"

// Schedule holds the active debts of one user in priority order under the
// current strategy.
//
// In a Schedule debts are always fully sorted: every mutation (push,
// payment, strategy change) re-sorts the whole sequence, and the element
// at index 0 is the top of priority. The sort is stable, so debts with
// equal keys keep their insertion order.
type Schedule struct {
	debts    []Debt
	strategy Strategy
}

// NewSchedule creates an empty schedule ordered by the given strategy.
func NewSchedule(s Strategy) *Schedule {
	return &Schedule{debts: make([]Debt, 0), strategy: s}
}

// Strategy returns the active ordering strategy.
func (s *Schedule) Strategy() Strategy { return s.strategy }

// Len returns the number of active debts.
func (s *Schedule) Len() int { return len(s.debts) }

// Push inserts a debt and re-sorts the sequence under the active strategy.
func (s *Schedule) Push(d Debt) {
	s.debts = append(s.debts, d)
	s.stableSort()
}

// PeekTop returns the top-of-priority debt without removing it, or nil
// when the schedule is empty.
func (s *Schedule) PeekTop() *Debt {
	if len(s.debts) == 0 {
		return nil
	}
	top := s.debts[0]
	return &top
}

// PopTop removes and returns the top-of-priority debt, or nil when the
// schedule is empty.
func (s *Schedule) PopTop() *Debt {
	if len(s.debts) == 0 {
		return nil
	}
	top := s.debts[0]
	s.debts = s.debts[1:]
	return &top
}

// PayTop applies a payment to the top-of-priority debt and re-sorts, since
// the balance change can alter the snowball order. Paying an empty
// schedule is a no-op.
func (s *Schedule) PayTop(amount Money) error {
	if len(s.debts) == 0 {
		return nil
	}
	if err := s.debts[0].ApplyPayment(amount); err != nil {
		return err
	}
	s.stableSort()
	return nil
}

// SetStrategy updates the active strategy and immediately re-sorts.
// Setting the same strategy twice leaves the order unchanged.
func (s *Schedule) SetStrategy(strategy Strategy) {
	s.strategy = strategy
	s.stableSort()
}

// MaxBalance returns the largest balance across all held debts, or 1.0
// when the schedule is empty so that display scaling never divides by
// zero.
func (s *Schedule) MaxBalance() float64 {
	if len(s.debts) == 0 {
		return 1.0
	}
	max := s.debts[0].Balance
	for _, d := range s.debts[1:] {
		if d.Balance.GreaterThan(max) {
			max = d.Balance
		}
	}
	return max.AsFloat()
}

// Snapshot returns a copy of the debts in priority order, index 0 being
// the top of priority, for read-only inspection.
func (s *Schedule) Snapshot() []Debt {
	snapshot := make([]Debt, len(s.debts))
	copy(snapshot, s.debts)
	return snapshot
}

// stableSort sorts the schedule under the active strategy. The sort is
// stable, meaning debts with equal keys maintain their relative order.
func (s *Schedule) stableSort() {
	sort.SliceStable(s.debts, func(i, j int) bool {
		switch s.strategy {
		case Snowball:
			return s.debts[j].Balance.LessThan(s.debts[i].Balance)
		default: // Avalanche
			return s.debts[i].Rate < s.debts[j].Rate
		}
	})
}
