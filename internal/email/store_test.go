package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotIsolation(t *testing.T) {
	store := NewFixtureStore()

	snap := store.Emails()
	snap[0].Subject = "mutated"

	fresh := store.Emails()
	assert.NotEqual(t, "mutated", fresh[0].Subject)
}

func TestStore_Get(t *testing.T) {
	store := NewFixtureStore()

	e, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "1", e.ID)
	assert.Equal(t, "acc-1", e.AccountID)

	_, ok = store.Get("nope")
	assert.False(t, ok)
}

func TestStore_Replace(t *testing.T) {
	store := NewFixtureStore()

	e, ok := store.Get("3")
	require.True(t, ok)

	updated := e.WithClassification(Classification{
		Category:   CategoryNotInterested,
		Confidence: 0.8,
		Reasoning:  "declined the demo",
	})
	require.NoError(t, store.Replace(updated))

	got, ok := store.Get("3")
	require.True(t, ok)
	assert.Equal(t, CategoryNotInterested, got.Category)

	// Position in the collection is preserved
	all := store.Emails()
	assert.Equal(t, "3", all[2].ID)
}

func TestStore_Replace_NotFound(t *testing.T) {
	store := NewFixtureStore()

	err := store.Replace(Email{ID: "999"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStore_SeedCopied(t *testing.T) {
	seed := []Email{{ID: "x", Subject: "orig"}}
	store := NewStore(seed, nil, nil)

	seed[0].Subject = "changed"

	e, ok := store.Get("x")
	require.True(t, ok)
	assert.Equal(t, "orig", e.Subject)
}
