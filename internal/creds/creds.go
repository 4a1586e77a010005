// Package creds resolves the generation API credential from a layered
// lookup: an override persisted in the system keyring takes precedence over
// the process-level default from config or environment. Absence of both is a
// valid state, not an error.
package creds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/99designs/keyring"
)

const (
	serviceName = "onebox"
	apiKeyName  = "gemini_api_key"
)

// Resolver performs the layered credential lookup.
type Resolver struct {
	ring        keyring.Keyring
	defaultFunc func() string
}

// New opens the system keyring and returns a resolver whose fallback layer is
// defaultFunc (typically the config file value or an environment variable).
func New(defaultFunc func() string) (*Resolver, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/onebox/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("onebox-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return NewWithRing(ring, defaultFunc), nil
}

// NewWithRing builds a resolver over an explicit keyring, used by tests and
// by callers that manage the keyring lifecycle themselves.
func NewWithRing(ring keyring.Keyring, defaultFunc func() string) *Resolver {
	if defaultFunc == nil {
		defaultFunc = func() string { return "" }
	}
	return &Resolver{ring: ring, defaultFunc: defaultFunc}
}

// Resolve returns the effective credential: the stored override when present
// and non-empty, otherwise the process-level default. An empty result means
// no credential is configured.
func (r *Resolver) Resolve() string {
	if r == nil {
		return ""
	}
	if override, ok := r.override(); ok {
		return override
	}
	return strings.TrimSpace(r.defaultFunc())
}

func (r *Resolver) override() (string, bool) {
	if r.ring == nil {
		return "", false
	}
	item, err := r.ring.Get(apiKeyName)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(string(item.Data))
	return value, value != ""
}

// HasOverride reports whether a non-empty override is stored.
func (r *Resolver) HasOverride() bool {
	_, ok := r.override()
	return ok
}

// SetOverride persists a credential override in the keyring.
func (r *Resolver) SetOverride(value string) error {
	if r == nil || r.ring == nil {
		return errors.New("keyring not available")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("credential cannot be empty")
	}
	if err := r.ring.Set(keyring.Item{Key: apiKeyName, Data: []byte(value)}); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

// ClearOverride removes the stored override. Clearing an absent override is
// not an error.
func (r *Resolver) ClearOverride() error {
	if r == nil || r.ring == nil {
		return errors.New("keyring not available")
	}
	err := r.ring.Remove(apiKeyName)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("clearing credential: %w", err)
	}
	return nil
}
