package debtbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestController(t *testing.T) (*Controller, *FileStore) {
	t.Helper()
	store := NewFileStore(t.TempDir(), quietLogger())
	return NewController(store, quietLogger(), "USD"), store
}

func dec(value float64) decimal.Decimal { return decimal.NewFromFloat(value) }

func TestController_BootstrapAdmin(t *testing.T) {
	c, store := newTestController(t)

	if !c.Login("admin", "admin") {
		t.Fatal("the bootstrap admin account should authenticate with admin/admin")
	}
	a, ok := NewRegistry(store.LoadAccounts()).Lookup("admin")
	if !ok {
		t.Fatal("the bootstrap admin account was not persisted")
	}
	if a.Type != Advisor {
		t.Errorf("admin account type = %v, want %v", a.Type, Advisor)
	}

	// A second controller over the same store must reuse, not recreate,
	// the admin account.
	c.Logout()
	c2 := NewController(store, quietLogger(), "USD")
	if !c2.Login("admin", "admin") {
		t.Error("the admin account should survive a second construction")
	}
}

func TestController_LoginLogout(t *testing.T) {
	c, _ := newTestController(t)

	if c.LoggedIn() {
		t.Fatal("a fresh controller should start logged out")
	}
	if c.Login("admin", "wrong") {
		t.Error("Login() with a wrong password should fail")
	}
	if c.Login("nobody", "admin") {
		t.Error("Login() for an unknown user should fail")
	}
	if !c.Login("admin", "admin") {
		t.Fatal("Login() with correct credentials should succeed")
	}
	if got := c.CurrentUser(); got != "admin" {
		t.Errorf("CurrentUser() = %q, want admin", got)
	}

	c.Logout()
	if c.LoggedIn() {
		t.Error("Logout() should end the session")
	}
	c.Logout() // logging out twice is a no-op
}

func TestController_RegisterStartsSession(t *testing.T) {
	c, _ := newTestController(t)

	if !c.Register("Joe Smith", "joe@example.com", "joe", "Secret1", Debtor) {
		t.Fatal("Register() for a fresh username should succeed")
	}
	if got := c.CurrentUser(); got != "joe" {
		t.Errorf("CurrentUser() after registration = %q, want joe", got)
	}
	if got := c.Snapshot(); len(got) != 0 {
		t.Errorf("a new user's schedule should start empty, got %+v", got)
	}

	// A duplicate registration fails and leaves the original credentials
	// working.
	if c.Register("Impostor", "", "joe", "other", Debtor) {
		t.Error("Register() for a taken username should fail")
	}
	c.Logout()
	if !c.Login("joe", "Secret1") {
		t.Error("the original credentials should survive a duplicate registration")
	}
}

func TestController_DebtsSurviveRelogin(t *testing.T) {
	c, _ := newTestController(t)
	c.Register("Joe Smith", "", "joe", "pw", Debtor)

	if err := c.PushDebt("Card A", dec(1000), 20, dec(50)); err != nil {
		t.Fatal(err)
	}
	if err := c.PushDebt("Loan B", dec(5000), 5, dec(100)); err != nil {
		t.Fatal(err)
	}
	c.Logout()

	if !c.Login("joe", "pw") {
		t.Fatal("re-login failed")
	}
	got := c.Snapshot()
	if len(got) != 2 {
		t.Fatalf("Snapshot() after re-login holds %d debts, want 2", len(got))
	}
	// The replayed schedule is ordered under the default strategy.
	if got[0].Name != "Loan B" || got[1].Name != "Card A" {
		t.Errorf("Snapshot() order after re-login = %v, want [Loan B Card A]", names(got))
	}
}

func TestController_PaidOffRoundTrips(t *testing.T) {
	c, _ := newTestController(t)
	c.Register("Joe Smith", "", "joe", "pw", Debtor)

	if err := c.PushDebt("Card A", dec(100), 20, dec(10)); err != nil {
		t.Fatal(err)
	}
	if err := c.ApplyPayment(dec(100)); err != nil {
		t.Fatal(err)
	}
	top := c.PeekTopDebt()
	if top == nil || !top.IsPaidOff() {
		t.Fatalf("the fully paid debt should report paid off, got %+v", top)
	}
	if popped := c.PopTopDebt(); popped == nil || popped.Name != "Card A" {
		t.Fatalf("PopTopDebt() = %v, want Card A", popped)
	}
	if got := c.PaidOff(); len(got) != 1 || got[0].Name != "Card A" {
		t.Fatalf("PaidOff() = %+v, want the popped Card A", got)
	}

	c.Logout()
	if !c.Login("joe", "pw") {
		t.Fatal("re-login failed")
	}
	if got := c.Snapshot(); len(got) != 0 {
		t.Errorf("the paid-off debt should not return to the schedule, got %+v", got)
	}
	if got := c.PaidOff(); len(got) != 1 || got[0].Name != "Card A" {
		t.Errorf("PaidOff() after re-login = %+v, want the retired Card A", got)
	}
}

func TestController_OperationsWithoutSession(t *testing.T) {
	c, _ := newTestController(t)

	if err := c.PushDebt("Card A", dec(100), 20, dec(10)); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("PushDebt() without a session = %v, want ErrNotLoggedIn", err)
	}
	if err := c.ApplyPayment(dec(10)); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("ApplyPayment() without a session = %v, want ErrNotLoggedIn", err)
	}
	if got := c.PeekTopDebt(); got != nil {
		t.Errorf("PeekTopDebt() without a session = %v, want nil", got)
	}
	if got := c.PopTopDebt(); got != nil {
		t.Errorf("PopTopDebt() without a session = %v, want nil", got)
	}
	if got := c.Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() without a session = %v, want empty", got)
	}
	if got := c.MaxBalance(); got != 1.0 {
		t.Errorf("MaxBalance() without a session = %v, want the 1.0 sentinel", got)
	}
	c.SetStrategy(Snowball) // must not panic
}

func TestController_ApplyPayment(t *testing.T) {
	c, _ := newTestController(t)
	c.Register("Joe Smith", "", "joe", "pw", Debtor)

	// Paying an empty schedule is a no-op.
	if err := c.ApplyPayment(dec(50)); err != nil {
		t.Errorf("ApplyPayment() on an empty schedule = %v, want nil", err)
	}

	if err := c.PushDebt("Card A", dec(100), 20, dec(10)); err != nil {
		t.Fatal(err)
	}
	var verr *ValidationError
	if err := c.ApplyPayment(dec(-25)); !errors.As(err, &verr) {
		t.Errorf("ApplyPayment() with a negative amount = %v, want a ValidationError", err)
	}
	if top := c.PeekTopDebt(); !top.Balance.Equal(usd(100)) {
		t.Errorf("the rejected payment changed the balance to %v", top.Balance)
	}
}

func TestController_SaveAll(t *testing.T) {
	c, store := newTestController(t)
	c.Register("Joe Smith", "", "joe", "pw", Debtor)
	if err := c.PushDebt("Card A", dec(1000), 20, dec(50)); err != nil {
		t.Fatal(err)
	}

	// SaveAll checkpoints without ending the session.
	c.SaveAll()
	if !c.LoggedIn() {
		t.Error("SaveAll() should not end the session")
	}

	current, _ := store.LoadDebts("joe")
	if len(current) != 1 || current[0].Name != "Card A" {
		t.Errorf("LoadDebts() after SaveAll = %+v, want the pushed Card A", current)
	}
	if _, ok := NewRegistry(store.LoadAccounts()).Lookup("joe"); !ok {
		t.Error("LoadAccounts() after SaveAll should hold the registered user")
	}
}
