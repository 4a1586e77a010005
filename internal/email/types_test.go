package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{"interested", "Interested", CategoryInterested},
		{"not_interested", "Not Interested", CategoryNotInterested},
		{"unknown", "Unknown", CategoryUnknown},
		{"spam", "Spam", CategorySpam},
		{"meeting_booked", "Meeting Booked", CategoryMeetingBooked},
		{"out_of_set", "Bogus", CategoryUnknown},
		{"empty", "", CategoryUnknown},
		{"wrong_case", "spam", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.input))
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q", c)
	}
	assert.False(t, Category("Bogus").Valid())
	assert.False(t, Category("").Valid())
}

func TestEmail_WithClassification_CopyOnWrite(t *testing.T) {
	orig := Email{ID: "1", Subject: "hello"}

	updated := orig.WithClassification(Classification{
		Category:       CategoryInterested,
		Confidence:     0.9,
		Reasoning:      "sounds keen",
		SuggestedReply: "thanks!",
	})

	// Original untouched
	assert.Empty(t, orig.Category)
	assert.Nil(t, orig.Confidence)
	assert.Nil(t, orig.SuggestedReply)

	assert.Equal(t, CategoryInterested, updated.Category)
	require.NotNil(t, updated.Confidence)
	assert.Equal(t, 0.9, *updated.Confidence)
	assert.Equal(t, "sounds keen", updated.Reasoning)
	assert.Equal(t, "thanks!", updated.ReplyText())
}

func TestEmail_WithClassification_KeepsPrecomputedReply(t *testing.T) {
	precomputed := "already drafted"
	orig := Email{ID: "1", SuggestedReply: &precomputed}

	updated := orig.WithClassification(Classification{Category: CategorySpam, SuggestedReply: ""})

	// An empty generated reply must not clobber the stored one
	assert.Equal(t, "already drafted", updated.ReplyText())
}

func TestEmail_WithCategory(t *testing.T) {
	conf := 0.5
	e := Email{ID: "1", Category: CategorySpam, Confidence: &conf, Reasoning: "noisy"}

	manual := e.WithCategory(CategoryInterested)
	assert.Equal(t, CategoryInterested, manual.Category)

	cleared := e.WithCategory("")
	assert.False(t, cleared.Classified())
	assert.Nil(t, cleared.Confidence)
	assert.Empty(t, cleared.Reasoning)
}

func TestEmail_HasSuggestedReply(t *testing.T) {
	empty := ""
	assert.False(t, Email{}.HasSuggestedReply())
	assert.True(t, Email{SuggestedReply: &empty}.HasSuggestedReply())
	assert.Equal(t, "", Email{SuggestedReply: &empty}.ReplyText())
}

func TestFixture_Shape(t *testing.T) {
	emails := FixtureEmails()
	assert.Len(t, emails, 15)
	assert.Len(t, FixtureAccounts(), 2)
	assert.Len(t, FixtureFolders(), 5)

	seen := map[string]bool{}
	for _, e := range emails {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.True(t, e.HasSuggestedReply(), "fixture record %s should carry a reply", e.ID)
		if e.Folder == "spam" {
			assert.Equal(t, "", e.ReplyText(), "spam record %s must have empty reply", e.ID)
		}
	}
}
