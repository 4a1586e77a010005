package llm

import (
	"fmt"
	"time"
)

// NewProviderFromConfig creates a Provider from config fields. For bedrock the
// endpoint argument carries the AWS region; keyFunc is only consulted by
// providers that authenticate with an API key.
func NewProviderFromConfig(provider, endpoint, model string, timeout time.Duration, keyFunc func() string) (Provider, error) {
	switch provider {
	case "gemini", "":
		return NewGemini(endpoint, timeout, keyFunc), nil
	case "ollama":
		return NewOllama(endpoint, model, timeout), nil
	case "bedrock":
		return NewBedrock(endpoint, model, timeout)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
