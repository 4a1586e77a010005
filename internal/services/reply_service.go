package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rithu453/onebox/internal/email"
)

// ReplyServiceImpl implements ReplyService
type ReplyServiceImpl struct {
	store      *email.Store
	classifier ClassifierService
}

// NewReplyService creates a new reply service
func NewReplyService(store *email.Store, classifier ClassifierService) *ReplyServiceImpl {
	return &ReplyServiceImpl{store: store, classifier: classifier}
}

// SuggestReply resolves a reply in two tiers: a precomputed reply stored on
// the record wins outright (the empty reply on spam records counts), so
// fixture data stays functional offline; otherwise the body is classified and
// only its suggested reply is returned. With neither a stored reply nor a
// body there is nothing to show and ErrMissingInput is returned.
func (s *ReplyServiceImpl) SuggestReply(ctx context.Context, emailID, body string) (string, error) {
	var record email.Email
	if s.store != nil {
		if e, ok := s.store.Get(emailID); ok {
			record = e
			if e.HasSuggestedReply() {
				return e.ReplyText(), nil
			}
		}
	}

	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("suggest reply for %q: %w", emailID, ErrMissingInput)
	}

	if s.classifier == nil {
		return "", fmt.Errorf("classifier not available")
	}

	c := s.classifier.Classify(ctx, body, "", ClassifyOptions{
		AccountID: record.AccountID,
		EmailID:   emailID,
	})
	return c.SuggestedReply, nil
}
