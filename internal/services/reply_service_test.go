package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rithu453/onebox/internal/email"
)

// stubClassifier returns a canned classification and records the calls it saw.
type stubClassifier struct {
	result email.Classification
	calls  []ClassifyOptions
	bodies []string
}

func (s *stubClassifier) Classify(_ context.Context, body, _ string, opts ClassifyOptions) email.Classification {
	s.calls = append(s.calls, opts)
	s.bodies = append(s.bodies, body)
	return s.result
}

func TestSuggestReply_StoredReplyWins(t *testing.T) {
	classifier := &stubClassifier{result: email.Classification{SuggestedReply: "generated"}}
	service := NewReplyService(email.NewFixtureStore(), classifier)

	record, ok := email.NewFixtureStore().Get("1")
	require.True(t, ok)

	got, err := service.SuggestReply(context.Background(), "1", record.Body)
	require.NoError(t, err)
	assert.Equal(t, record.ReplyText(), got)
	assert.NotEmpty(t, got)
	assert.Empty(t, classifier.calls, "stored reply must short-circuit classification")
}

func TestSuggestReply_SpamEmptyReplyIsIntentional(t *testing.T) {
	classifier := &stubClassifier{result: email.Classification{SuggestedReply: "generated"}}
	service := NewReplyService(email.NewFixtureStore(), classifier)

	// Record 2 is spam and carries an intentionally empty stored reply. Even
	// with no body provided, the empty reply is returned without error.
	got, err := service.SuggestReply(context.Background(), "2", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Empty(t, classifier.calls)
}

func TestSuggestReply_UnknownRecordFallsThroughToClassifier(t *testing.T) {
	classifier := &stubClassifier{result: email.Classification{SuggestedReply: "generated"}}
	service := NewReplyService(email.NewFixtureStore(), classifier)

	got, err := service.SuggestReply(context.Background(), "no-such-id", "please review my proposal")
	require.NoError(t, err)
	assert.Equal(t, "generated", got)
	require.Len(t, classifier.calls, 1)
	assert.Equal(t, "no-such-id", classifier.calls[0].EmailID)
	assert.Equal(t, "please review my proposal", classifier.bodies[0])
}

func TestSuggestReply_NoReplyNoBody(t *testing.T) {
	seed := []email.Email{{ID: "bare", AccountID: "acc-1", Subject: "s"}}
	store := email.NewStore(seed, nil, nil)
	classifier := &stubClassifier{result: email.Classification{SuggestedReply: "generated"}}
	service := NewReplyService(store, classifier)

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := service.SuggestReply(context.Background(), "bare", body)
		assert.ErrorIs(t, err, ErrMissingInput)
	}
	assert.Empty(t, classifier.calls)
}

func TestSuggestReply_ClassifierPathCarriesAccountID(t *testing.T) {
	seed := []email.Email{{ID: "bare", AccountID: "acc-2", Body: "hello"}}
	store := email.NewStore(seed, nil, nil)
	classifier := &stubClassifier{result: email.Classification{
		Category:       email.CategoryInterested,
		SuggestedReply: "thanks, let's talk",
	}}
	service := NewReplyService(store, classifier)

	got, err := service.SuggestReply(context.Background(), "bare", "hello")
	require.NoError(t, err)
	assert.Equal(t, "thanks, let's talk", got)
	require.Len(t, classifier.calls, 1)
	assert.Equal(t, "acc-2", classifier.calls[0].AccountID)
}

func TestSuggestReply_NilStore(t *testing.T) {
	classifier := &stubClassifier{result: email.Classification{SuggestedReply: "generated"}}
	service := NewReplyService(nil, classifier)

	got, err := service.SuggestReply(context.Background(), "1", "some body")
	require.NoError(t, err)
	assert.Equal(t, "generated", got)
}
