package debtbook

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	accountsFilename = "accounts.jsonl"
	debtsDirname     = "debts"
)

// FileStore persists the account table and per-user debt files under a
// single data directory:
//
//	<dir>/accounts.jsonl        the whole username to account table
//	<dir>/debts/<user>.jsonl    one file per username
//
// Loading is fail-soft: a missing or unreadable file yields empty values
// and a warning in the log, never an error. Saving logs and swallows I/O
// problems the same way, so storage trouble never aborts a user-facing
// operation. Writes are whole-file rewrites and are not guarded against
// concurrent processes.
type FileStore struct {
	dir string
	log logrus.FieldLogger
}

// NewFileStore creates a store rooted at dir. A nil logger falls back to
// the logrus standard logger.
func NewFileStore(dir string, log logrus.FieldLogger) *FileStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileStore{dir: dir, log: log}
}

// Dir returns the store's data directory.
func (s *FileStore) Dir() string { return s.dir }

// debtsPath returns the debt file path for a username. The username is
// path-escaped so that it is always a single safe file name.
func (s *FileStore) debtsPath(username string) string {
	return filepath.Join(s.dir, debtsDirname, url.PathEscape(username)+".jsonl")
}

// LoadAccounts reads the account table. Missing or corrupt files are
// treated as "no data yet" and yield an empty table.
func (s *FileStore) LoadAccounts() map[string]Account {
	path := filepath.Join(s.dir, accountsFilename)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("file", path).Warn("cannot open accounts file, starting empty")
		}
		return make(map[string]Account)
	}
	defer f.Close()

	table, err := DecodeAccounts(f)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Warn("accounts file unreadable, starting empty")
		return make(map[string]Account)
	}
	return table
}

// SaveAccounts rewrites the whole account table file. I/O problems are
// logged and swallowed.
func (s *FileStore) SaveAccounts(table map[string]Account) {
	path := filepath.Join(s.dir, accountsFilename)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.log.WithError(err).WithField("dir", s.dir).Error("cannot create data directory")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Error("cannot create accounts file")
		return
	}
	defer f.Close()

	if err := EncodeAccounts(f, table); err != nil {
		s.log.WithError(err).WithField("file", path).Error("cannot write accounts file")
	}
}

// LoadDebts reads a user's current and paid-off debt sequences. Missing
// or corrupt files yield two empty sequences.
func (s *FileStore) LoadDebts(username string) (current, paidOff []Debt) {
	path := s.debtsPath(username)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("file", path).Warn("cannot open debts file, starting empty")
		}
		return []Debt{}, []Debt{}
	}
	defer f.Close()

	current, paidOff, err = DecodeDebts(f)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Warn("debts file unreadable, starting empty")
		return []Debt{}, []Debt{}
	}
	return current, paidOff
}

// SaveDebts rewrites a user's debt file. I/O problems are logged and
// swallowed.
func (s *FileStore) SaveDebts(username string, current, paidOff []Debt) {
	path := s.debtsPath(username)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		s.log.WithError(err).WithField("dir", filepath.Dir(path)).Error("cannot create debts directory")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Error("cannot create debts file")
		return
	}
	defer f.Close()

	if err := EncodeDebts(f, current, paidOff); err != nil {
		s.log.WithError(err).WithField("file", path).Error("cannot write debts file")
	}
}
