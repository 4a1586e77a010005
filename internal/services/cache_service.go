package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rithu453/onebox/internal/db"
	"github.com/rithu453/onebox/internal/email"
)

// CacheServiceImpl implements CacheService
type CacheServiceImpl struct {
	store *db.ClassificationStore
}

// NewCacheService creates a new cache service
func NewCacheService(store *db.ClassificationStore) *CacheServiceImpl {
	return &CacheServiceImpl{store: store}
}

func (s *CacheServiceImpl) GetClassification(ctx context.Context, accountID, emailID string) (email.Classification, bool, error) {
	if s.store == nil {
		return email.Classification{}, false, fmt.Errorf("classification cache: %w", ErrCacheUnavailable)
	}
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(emailID) == "" {
		return email.Classification{}, false, fmt.Errorf("accountID and emailID cannot be empty")
	}

	c, found, err := s.store.Load(ctx, accountID, emailID)
	if err != nil {
		return email.Classification{}, false, fmt.Errorf("failed to load classification from cache: %w", err)
	}
	return c, found, nil
}

func (s *CacheServiceImpl) SaveClassification(ctx context.Context, accountID, emailID string, c email.Classification) error {
	if s.store == nil {
		return fmt.Errorf("classification cache: %w", ErrCacheUnavailable)
	}
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(emailID) == "" {
		return fmt.Errorf("accountID and emailID cannot be empty")
	}

	if err := s.store.Save(ctx, accountID, emailID, c, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save classification to cache: %w", err)
	}
	return nil
}

func (s *CacheServiceImpl) InvalidateClassification(ctx context.Context, accountID, emailID string) error {
	if s.store == nil {
		return fmt.Errorf("classification cache: %w", ErrCacheUnavailable)
	}
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(emailID) == "" {
		return fmt.Errorf("accountID and emailID cannot be empty")
	}

	if err := s.store.Delete(ctx, accountID, emailID); err != nil {
		return fmt.Errorf("failed to invalidate classification: %w", err)
	}
	return nil
}

func (s *CacheServiceImpl) ClearCache(ctx context.Context, accountID string) error {
	if s.store == nil {
		return fmt.Errorf("classification cache: %w", ErrCacheUnavailable)
	}
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("accountID cannot be empty")
	}

	if err := s.store.Clear(ctx, accountID); err != nil {
		return fmt.Errorf("failed to clear classification cache: %w", err)
	}
	return nil
}
