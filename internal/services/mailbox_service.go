package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rithu453/onebox/internal/email"
)

// MailboxServiceImpl implements MailboxService over the in-memory store.
type MailboxServiceImpl struct {
	store *email.Store
	// listDelay simulates the latency of a mailbox backend so the view layer
	// exercises its loading state. Zero disables the wait.
	listDelay time.Duration
}

// NewMailboxService creates a new mailbox service
func NewMailboxService(store *email.Store, listDelay time.Duration) *MailboxServiceImpl {
	return &MailboxServiceImpl{store: store, listDelay: listDelay}
}

func (s *MailboxServiceImpl) ListEmails(ctx context.Context, query string, filters email.Filters) ([]email.Email, error) {
	if s.store == nil {
		return nil, fmt.Errorf("mailbox store not available")
	}

	if s.listDelay > 0 {
		timer := time.NewTimer(s.listDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return email.Filter(s.store.Emails(), query, filters), nil
}

func (s *MailboxServiceImpl) GetEmail(id string) (email.Email, bool) {
	if s.store == nil {
		return email.Email{}, false
	}
	return s.store.Get(id)
}

func (s *MailboxServiceImpl) Accounts() []email.Account {
	if s.store == nil {
		return nil
	}
	return s.store.Accounts()
}

func (s *MailboxServiceImpl) Folders() []email.Folder {
	if s.store == nil {
		return nil
	}
	return s.store.Folders()
}

func (s *MailboxServiceImpl) SetCategory(id string, category email.Category) (email.Email, error) {
	return s.update(id, func(e email.Email) email.Email {
		return e.WithCategory(category)
	})
}

func (s *MailboxServiceImpl) ApplyClassification(id string, c email.Classification) (email.Email, error) {
	return s.update(id, func(e email.Email) email.Email {
		return e.WithClassification(c)
	})
}

// update applies a copy-on-write transform and swaps the new record value
// into the store.
func (s *MailboxServiceImpl) update(id string, transform func(email.Email) email.Email) (email.Email, error) {
	if s.store == nil {
		return email.Email{}, fmt.Errorf("mailbox store not available")
	}
	current, ok := s.store.Get(id)
	if !ok {
		return email.Email{}, fmt.Errorf("email %q: %w", id, ErrNotFound)
	}
	updated := transform(current)
	if err := s.store.Replace(updated); err != nil {
		return email.Email{}, err
	}
	return updated, nil
}
