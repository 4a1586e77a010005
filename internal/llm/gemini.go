package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultGeminiEndpoint is the generateContent REST endpoint for the default
// model. The model name is part of the path, not the payload.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// GeminiClient implements Provider for the Google generative language REST
// API. The API key is resolved per request so a key stored while the app is
// running takes effect without a restart.
type GeminiClient struct {
	Endpoint string
	Timeout  time.Duration

	// KeyFunc resolves the API key at request time. An empty result means no
	// credential is available.
	KeyFunc func() string
}

// NewGemini creates a Gemini client. An empty endpoint selects the default
// generateContent endpoint.
func NewGemini(endpoint string, timeout time.Duration, keyFunc func() string) *GeminiClient {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultGeminiEndpoint
	}
	if keyFunc == nil {
		keyFunc = func() string { return "" }
	}
	return &GeminiClient{Endpoint: endpoint, Timeout: timeout, KeyFunc: keyFunc}
}

// Name returns provider name
func (c *GeminiClient) Name() string { return "gemini" }

// HasCredential reports whether an API key is currently resolvable.
func (c *GeminiClient) HasCredential() bool {
	return strings.TrimSpace(c.KeyFunc()) != ""
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// geminiResponse covers the envelope variants the endpoint has been observed
// to produce. Text extraction tries the known locations in priority order.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		Text         string `json:"text"`
		Output       string `json:"output"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Text string `json:"text"`
}

// Generate sends a single non-streaming request with deterministic sampling
// and returns the generated text.
func (c *GeminiClient) Generate(prompt string) (string, error) {
	key := strings.TrimSpace(c.KeyFunc())
	if key == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0,
			MaxOutputTokens: 1024,
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	client := &http.Client{Timeout: c.Timeout}
	resp, err := client.Post(c.Endpoint+"?key="+url.QueryEscape(key), "application/json", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var envelope geminiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("decode gemini envelope: %w", err)
	}

	text, ok := extractText(envelope)
	if !ok {
		return "", fmt.Errorf("no text in gemini response")
	}
	return text, nil
}

// extractText tries the known envelope locations in priority order, stopping
// at the first non-empty hit. The fallback chain tolerates upstream schema
// drift between API revisions.
func extractText(envelope geminiResponse) (string, bool) {
	if len(envelope.Candidates) > 0 {
		cand := envelope.Candidates[0]
		if len(cand.Content.Parts) > 0 && cand.Content.Parts[0].Text != "" {
			return cand.Content.Parts[0].Text, true
		}
		if cand.Text != "" {
			return cand.Text, true
		}
		if cand.Output != "" {
			return cand.Output, true
		}
	}
	if envelope.Text != "" {
		return envelope.Text, true
	}
	return "", false
}
