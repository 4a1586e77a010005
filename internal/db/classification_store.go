package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rithu453/onebox/internal/email"
)

// ClassificationStore handles cached classification results
type ClassificationStore struct {
	db *sql.DB
}

// NewClassificationStore creates a classification store from a base store
func NewClassificationStore(store *Store) *ClassificationStore {
	if store == nil {
		return nil
	}
	return &ClassificationStore{db: store.DB()}
}

// Save upserts a classification for (account_id, email_id)
func (cs *ClassificationStore) Save(ctx context.Context, accountID, emailID string, c email.Classification, updatedAt int64) error {
	if cs == nil || cs.db == nil {
		return fmt.Errorf("classification store not initialized")
	}
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(emailID) == "" {
		return fmt.Errorf("invalid classification inputs")
	}
	_, err := cs.db.ExecContext(ctx, `INSERT INTO classifications(account_id, email_id, category, confidence, reasoning, suggested_reply, updated_at)
VALUES(?,?,?,?,?,?,?)
ON CONFLICT(account_id, email_id) DO UPDATE SET category=excluded.category, confidence=excluded.confidence, reasoning=excluded.reasoning, suggested_reply=excluded.suggested_reply, updated_at=excluded.updated_at;
`, accountID, emailID, string(c.Category), c.Confidence, c.Reasoning, c.SuggestedReply, updatedAt)
	return err
}

// Load returns a cached classification if present
func (cs *ClassificationStore) Load(ctx context.Context, accountID, emailID string) (email.Classification, bool, error) {
	if cs == nil || cs.db == nil {
		return email.Classification{}, false, fmt.Errorf("classification store not initialized")
	}
	var category string
	var out email.Classification
	err := cs.db.QueryRowContext(ctx, `SELECT category, confidence, reasoning, suggested_reply FROM classifications WHERE account_id=? AND email_id=?`,
		accountID, emailID).Scan(&category, &out.Confidence, &out.Reasoning, &out.SuggestedReply)
	if err == sql.ErrNoRows {
		return email.Classification{}, false, nil
	}
	if err != nil {
		return email.Classification{}, false, err
	}
	// Coerce in case the stored value predates the current category set
	out.Category = email.ParseCategory(category)
	return out, true, nil
}

// Delete removes a cached classification for (account_id, email_id)
func (cs *ClassificationStore) Delete(ctx context.Context, accountID, emailID string) error {
	if cs == nil || cs.db == nil {
		return fmt.Errorf("classification store not initialized")
	}
	_, err := cs.db.ExecContext(ctx, `DELETE FROM classifications WHERE account_id=? AND email_id=?`, accountID, emailID)
	return err
}

// Clear removes every cached classification for an account
func (cs *ClassificationStore) Clear(ctx context.Context, accountID string) error {
	if cs == nil || cs.db == nil {
		return fmt.Errorf("classification store not initialized")
	}
	_, err := cs.db.ExecContext(ctx, `DELETE FROM classifications WHERE account_id=?`, accountID)
	return err
}
