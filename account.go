package debtbook

import "fmt"

// UserType classifies an account.
type UserType int

const (
	// Debtor is a regular user tracking their own debts.
	Debtor UserType = iota
	// Advisor is a user reviewing debtor books.
	Advisor
)

func (t UserType) String() string {
	switch t {
	case Debtor:
		return "debtor"
	case Advisor:
		return "advisor"
	default:
		return "unknown"
	}
}

// ParseUserType parses a string into a UserType.
func ParseUserType(s string) (UserType, error) {
	switch s {
	case "debtor":
		return Debtor, nil
	case "advisor":
		return Advisor, nil
	default:
		return 0, fmt.Errorf("unknown user type: %q", s)
	}
}

// Account is a user's identity and credentials. Accounts are never
// mutated after registration.
//
// Passwords are stored and compared in plaintext. This is a known
// weakness of the on-disk format, kept deliberately; see DESIGN.md.
type Account struct {
	FullName string
	Email    string
	Username string // unique key
	Password string
	Type     UserType
}

// Registry maps usernames to accounts and answers authentication and
// registration. Usernames are globally unique keys.
type Registry struct {
	accounts map[string]Account
}

// NewRegistry creates a registry over the given account table. A nil
// table starts the registry empty.
func NewRegistry(accounts map[string]Account) *Registry {
	if accounts == nil {
		accounts = make(map[string]Account)
	}
	return &Registry{accounts: accounts}
}

// Authenticate reports whether a record exists for username and its
// stored password equals the given password exactly (case-sensitive).
func (r *Registry) Authenticate(username, password string) bool {
	a, ok := r.accounts[username]
	return ok && a.Password == password
}

// Register adds the account and returns true, or returns false when the
// username is already taken, leaving the existing record untouched.
func (r *Registry) Register(a Account) bool {
	if _, exists := r.accounts[a.Username]; exists {
		return false
	}
	r.accounts[a.Username] = a
	return true
}

// Lookup returns the account registered under username.
func (r *Registry) Lookup(username string) (Account, bool) {
	a, ok := r.accounts[username]
	return a, ok
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts returns a copy of the full username to account table, for
// persistence.
func (r *Registry) Accounts() map[string]Account {
	table := make(map[string]Account, len(r.accounts))
	for username, a := range r.accounts {
		table[username] = a
	}
	return table
}
