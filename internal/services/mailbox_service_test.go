package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rithu453/onebox/internal/email"
)

func TestListEmails_NoDelay(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	got, err := service.ListEmails(context.Background(), "", email.Filters{})
	require.NoError(t, err)
	assert.Len(t, got, 15)
}

func TestListEmails_AppliesQueryAndFilters(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	got, err := service.ListEmails(context.Background(), "meeting", email.Filters{Folder: "inbox"})
	require.NoError(t, err)
	for _, e := range got {
		assert.Equal(t, "inbox", e.Folder)
	}
}

func TestListEmails_WaitsOutTheDelay(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 30*time.Millisecond)

	start := time.Now()
	_, err := service.ListEmails(context.Background(), "", email.Filters{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestListEmails_CancelledDuringDelay(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ListEmails(ctx, "", email.Filters{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListEmails_NilStore(t *testing.T) {
	service := NewMailboxService(nil, 0)
	_, err := service.ListEmails(context.Background(), "", email.Filters{})
	assert.Error(t, err)
}

func TestGetEmail(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	got, ok := service.GetEmail("1")
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)

	_, ok = service.GetEmail("nope")
	assert.False(t, ok)
}

func TestAccountsAndFolders(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	assert.Len(t, service.Accounts(), 2)
	assert.Len(t, service.Folders(), 5)

	empty := NewMailboxService(nil, 0)
	assert.Nil(t, empty.Accounts())
	assert.Nil(t, empty.Folders())
}

func TestSetCategory(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	updated, err := service.SetCategory("3", email.CategoryInterested)
	require.NoError(t, err)
	assert.Equal(t, email.CategoryInterested, updated.Category)

	stored, ok := service.GetEmail("3")
	require.True(t, ok)
	assert.Equal(t, email.CategoryInterested, stored.Category)
}

func TestSetCategory_ClearTriage(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	_, err := service.ApplyClassification("3", email.Classification{
		Category:   email.CategorySpam,
		Confidence: 0.9,
		Reasoning:  "r",
	})
	require.NoError(t, err)

	cleared, err := service.SetCategory("3", "")
	require.NoError(t, err)
	assert.Empty(t, cleared.Category)
	assert.Nil(t, cleared.Confidence)
	assert.Empty(t, cleared.Reasoning)
}

func TestApplyClassification(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	c := email.Classification{
		Category:       email.CategoryMeetingBooked,
		Confidence:     0.85,
		Reasoning:      "proposes a call slot",
		SuggestedReply: "Tuesday works for me.",
	}
	updated, err := service.ApplyClassification("4", c)
	require.NoError(t, err)
	assert.Equal(t, email.CategoryMeetingBooked, updated.Category)
	require.NotNil(t, updated.Confidence)
	assert.Equal(t, 0.85, *updated.Confidence)
	assert.Equal(t, "Tuesday works for me.", updated.ReplyText())
}

func TestUpdate_NotFound(t *testing.T) {
	service := NewMailboxService(email.NewFixtureStore(), 0)

	_, err := service.SetCategory("missing", email.CategorySpam)
	assert.ErrorIs(t, err, ErrNotFound)
}
