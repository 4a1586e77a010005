package services

import (
	"context"

	"github.com/rithu453/onebox/internal/email"
)

// MailboxService exposes the email collection and its reference sets to the
// view layer.
type MailboxService interface {
	// ListEmails returns the filtered, ordered visible set. It passes
	// through a short latency window so consumers can surface a loading
	// state; cancelling the context aborts the wait.
	ListEmails(ctx context.Context, query string, filters email.Filters) ([]email.Email, error)
	GetEmail(id string) (email.Email, bool)
	Accounts() []email.Account
	Folders() []email.Folder
	// SetCategory replaces the record with a copy carrying a manually chosen
	// category (empty clears it) and returns the new value.
	SetCategory(id string, category email.Category) (email.Email, error)
	// ApplyClassification replaces the record with a copy carrying the
	// classification result and returns the new value.
	ApplyClassification(id string, c email.Classification) (email.Email, error)
}

// ClassifyOptions carries caching hints for a classification request.
type ClassifyOptions struct {
	AccountID       string
	EmailID         string
	UseCache        bool
	ForceRegenerate bool
}

// ClassifierService turns an email body into a validated Classification.
// Classify never returns an error: every failure path resolves to a fallback
// value whose Reasoning holds a user-facing explanation.
type ClassifierService interface {
	Classify(ctx context.Context, body, date string, opts ClassifyOptions) email.Classification
}

// ReplyService resolves a suggested reply for an email, preferring a
// precomputed reply on the record over a model call.
type ReplyService interface {
	SuggestReply(ctx context.Context, emailID, body string) (string, error)
}

// CacheService handles classification cache operations
type CacheService interface {
	GetClassification(ctx context.Context, accountID, emailID string) (email.Classification, bool, error)
	SaveClassification(ctx context.Context, accountID, emailID string, c email.Classification) error
	InvalidateClassification(ctx context.Context, accountID, emailID string) error
	ClearCache(ctx context.Context, accountID string) error
}
