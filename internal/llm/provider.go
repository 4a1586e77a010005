package llm

import "fmt"

// Provider defines a generic text-generation interface
type Provider interface {
	Name() string
	Generate(prompt string) (string, error)
}

// CredentialChecker is implemented by providers that need an API key before
// they can issue a request.
type CredentialChecker interface {
	HasCredential() bool
}

// HasCredential reports whether the provider is ready to make calls. Providers
// without a credential requirement (local endpoints, ambient AWS config) are
// always considered ready.
func HasCredential(p Provider) bool {
	if c, ok := p.(CredentialChecker); ok {
		return c.HasCredential()
	}
	return p != nil
}

// StatusError carries the HTTP status of a failed generation request so
// callers can phrase user-facing messages by status class.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generation endpoint returned status %d: %s", e.Code, e.Body)
}
