package email

import (
	"fmt"
	"sync"
)

// Store owns the canonical email collection plus the account and folder
// reference sets. Reads hand out snapshots; updates replace whole records
// (copy-on-write), so consumers always observe either the old or the new
// value of a record, never a partial one.
type Store struct {
	mu       sync.RWMutex
	emails   []Email
	accounts []Account
	folders  []Folder
}

// NewStore creates a store seeded with the given records.
func NewStore(emails []Email, accounts []Account, folders []Folder) *Store {
	s := &Store{
		emails:   make([]Email, len(emails)),
		accounts: make([]Account, len(accounts)),
		folders:  make([]Folder, len(folders)),
	}
	copy(s.emails, emails)
	copy(s.accounts, accounts)
	copy(s.folders, folders)
	return s
}

// NewFixtureStore creates a store seeded with the sample mailbox.
func NewFixtureStore() *Store {
	return NewStore(FixtureEmails(), FixtureAccounts(), FixtureFolders())
}

// Emails returns a snapshot of the current collection in stable order.
func (s *Store) Emails() []Email {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Email, len(s.emails))
	copy(out, s.emails)
	return out
}

// Accounts returns the account reference set.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Folders returns the folder reference set.
func (s *Store) Folders() []Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// Get returns the current value of the record with the given id.
func (s *Store) Get(id string) (Email, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.emails {
		if e.ID == id {
			return e, true
		}
	}
	return Email{}, false
}

// Replace swaps in a new value for the record with the same id, keeping its
// position in the collection. The previous value is discarded whole.
func (s *Store) Replace(updated Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.emails {
		if e.ID == updated.ID {
			s.emails[i] = updated
			return nil
		}
	}
	return fmt.Errorf("replace email %q: not found", updated.ID)
}
