package creds

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DefaultOnly(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), func() string { return "env-key" })

	assert.Equal(t, "env-key", r.Resolve())
	assert.False(t, r.HasOverride())
}

func TestResolver_OverrideWins(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), func() string { return "env-key" })

	require.NoError(t, r.SetOverride("stored-key"))

	assert.Equal(t, "stored-key", r.Resolve())
	assert.True(t, r.HasOverride())
}

func TestResolver_ClearFallsBackToDefault(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), func() string { return "env-key" })

	require.NoError(t, r.SetOverride("stored-key"))
	require.NoError(t, r.ClearOverride())

	assert.Equal(t, "env-key", r.Resolve())
	assert.False(t, r.HasOverride())
}

func TestResolver_ClearWhenAbsent(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), nil)
	assert.NoError(t, r.ClearOverride())
}

func TestResolver_NeitherLayer(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), nil)
	assert.Equal(t, "", r.Resolve())
}

func TestResolver_SetOverride_Validation(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), nil)

	assert.Error(t, r.SetOverride(""))
	assert.Error(t, r.SetOverride("   "))
}

func TestResolver_TrimsWhitespace(t *testing.T) {
	r := NewWithRing(keyring.NewArrayKeyring(nil), func() string { return "  padded  " })
	assert.Equal(t, "padded", r.Resolve())

	require.NoError(t, r.SetOverride("  key  "))
	assert.Equal(t, "key", r.Resolve())
}

func TestResolver_NilSafety(t *testing.T) {
	var r *Resolver
	assert.Equal(t, "", r.Resolve())
}
