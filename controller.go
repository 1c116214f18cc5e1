package debtbook

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrNotLoggedIn is returned by debt operations attempted without an
// active session.
var ErrNotLoggedIn = errors.New("not logged in")

// adminUsername is the bootstrap account created on first-ever run.
const adminUsername = "admin"

// Controller composes the account registry, the active schedule, and the
// file store into the operations a UI layer calls. It owns the single
// current session: exactly one user can be logged in at a time, and the
// schedule is discarded and rebuilt, never merged, on every login,
// registration, and logout.
//
// All operations are total: they report failure through booleans or
// explicit errors, and persistence problems are absorbed by the store.
type Controller struct {
	registry *Registry
	store    *FileStore
	log      logrus.FieldLogger
	currency string

	username string // empty when logged out
	schedule *Schedule
	paidOff  []Debt
}

// NewController loads the persisted account table and returns a
// controller in the LoggedOut state. The bootstrap admin account is
// created, and persisted, if this is the first-ever run. An empty
// currency falls back to DefaultCurrency.
func NewController(store *FileStore, log logrus.FieldLogger, currency string) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	c := &Controller{
		registry: NewRegistry(store.LoadAccounts()),
		store:    store,
		log:      log,
		currency: currency,
	}
	c.bootstrapAdmin()
	return c
}

// bootstrapAdmin registers the admin account when it is absent from the
// loaded table, typically on the first-ever run.
func (c *Controller) bootstrapAdmin() {
	if _, exists := c.registry.Lookup(adminUsername); exists {
		return
	}
	c.registry.Register(Account{
		FullName: "Administrator",
		Username: adminUsername,
		Password: adminUsername,
		Type:     Advisor,
	})
	c.store.SaveAccounts(c.registry.Accounts())
	c.log.WithField("username", adminUsername).Info("bootstrapped admin account")
}

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool { return c.username != "" }

// CurrentUser returns the active session's username, or "" when logged
// out.
func (c *Controller) CurrentUser() string { return c.username }

// Login authenticates and, on success, starts a fresh session: a new
// schedule is built and the user's persisted debts are replayed into it,
// current debts through Push and paid-off debts straight into the
// paid-off set. An already active session is logged out first.
func (c *Controller) Login(username, password string) bool {
	if !c.registry.Authenticate(username, password) {
		c.log.WithField("username", username).Warn("login failed")
		return false
	}
	if c.LoggedIn() {
		c.Logout()
	}

	c.username = username
	c.schedule = NewSchedule(Avalanche)
	current, paidOff := c.store.LoadDebts(username)
	for _, d := range current {
		c.schedule.Push(d)
	}
	c.paidOff = paidOff
	c.log.WithFields(logrus.Fields{"username": username, "debts": c.schedule.Len(), "paidOff": len(paidOff)}).Info("logged in")
	return true
}

// Register creates a new account and, on success, persists the account
// table immediately and starts a fresh, empty session for the new user.
// It returns false when the username is already taken.
func (c *Controller) Register(fullName, email, username, password string, userType UserType) bool {
	ok := c.registry.Register(Account{
		FullName: fullName,
		Email:    email,
		Username: username,
		Password: password,
		Type:     userType,
	})
	if !ok {
		c.log.WithField("username", username).Warn("registration failed: username taken")
		return false
	}
	c.store.SaveAccounts(c.registry.Accounts())

	if c.LoggedIn() {
		c.Logout()
	}
	c.username = username
	c.schedule = NewSchedule(Avalanche)
	c.paidOff = []Debt{}
	c.log.WithField("username", username).Info("registered")
	return true
}

// Logout persists the session's debts under the active username and
// discards the schedule. Logging out of a logged-out controller is a
// no-op.
func (c *Controller) Logout() {
	if !c.LoggedIn() {
		return
	}
	c.store.SaveDebts(c.username, c.schedule.Snapshot(), c.paidOff)
	c.log.WithField("username", c.username).Info("logged out")
	c.username = ""
	c.schedule = nil
	c.paidOff = nil
}

// SaveAll checkpoints the account table and, when a session is active,
// the current user's debts. It can be called at any time.
func (c *Controller) SaveAll() {
	c.store.SaveAccounts(c.registry.Accounts())
	if c.LoggedIn() {
		c.store.SaveDebts(c.username, c.schedule.Snapshot(), c.paidOff)
	}
}

// PushDebt validates and inserts a new debt into the active schedule.
func (c *Controller) PushDebt(name string, amount decimal.Decimal, rate Percent, minPayment decimal.Decimal) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	d, err := NewDebt(name, M(amount, c.currency), rate, M(minPayment, c.currency))
	if err != nil {
		return err
	}
	c.schedule.Push(d)
	c.log.WithFields(logrus.Fields{"username": c.username, "debt": name}).Info("debt added")
	return nil
}

// PeekTopDebt returns the top-of-priority debt without removing it, or
// nil when the schedule is empty or no session is active.
func (c *Controller) PeekTopDebt() *Debt {
	if !c.LoggedIn() {
		return nil
	}
	return c.schedule.PeekTop()
}

// PopTopDebt removes and returns the top-of-priority debt, or nil when
// the schedule is empty or no session is active. A popped debt that is
// paid off is retained in the paid-off set for historical display.
func (c *Controller) PopTopDebt() *Debt {
	if !c.LoggedIn() {
		return nil
	}
	d := c.schedule.PopTop()
	if d != nil && d.IsPaidOff() {
		c.paidOff = append(c.paidOff, *d)
		c.log.WithFields(logrus.Fields{"username": c.username, "debt": d.Name}).Info("debt paid off")
	}
	return d
}

// ApplyPayment applies a payment to the top-of-priority debt. Paying
// with an empty schedule is a no-op; negative amounts are rejected with
// a ValidationError.
func (c *Controller) ApplyPayment(amount decimal.Decimal) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	return c.schedule.PayTop(M(amount, c.currency))
}

// SetStrategy switches the active ordering strategy and re-sorts the
// schedule.
func (c *Controller) SetStrategy(s Strategy) {
	if !c.LoggedIn() {
		return
	}
	c.schedule.SetStrategy(s)
}

// Snapshot returns the active debts in priority order for display, or an
// empty sequence when no session is active.
func (c *Controller) Snapshot() []Debt {
	if !c.LoggedIn() {
		return []Debt{}
	}
	return c.schedule.Snapshot()
}

// PaidOff returns a copy of the session's paid-off set.
func (c *Controller) PaidOff() []Debt {
	paidOff := make([]Debt, len(c.paidOff))
	copy(paidOff, c.paidOff)
	return paidOff
}

// MaxBalance returns the largest active balance for display scaling, or
// the 1.0 sentinel when there is nothing to scale.
func (c *Controller) MaxBalance() float64 {
	if !c.LoggedIn() {
		return 1.0
	}
	return c.schedule.MaxBalance()
}
