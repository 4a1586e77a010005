package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rithu453/onebox/internal/config"
	"github.com/rithu453/onebox/internal/email"
	"github.com/rithu453/onebox/internal/llm"
)

// Fallback reasoning messages, selected by inspecting the failure signal.
const (
	reasonMissingKey  = "Missing API key"
	reasonOverloaded  = "The classification service is temporarily overloaded. Please try again in a moment."
	reasonInvalidKey  = "Invalid API key. Please check your API key."
	reasonRateLimited = "Rate limit exceeded. Please wait before trying again."
	reasonMalformed   = "Invalid response format from the classification service. Response may have been truncated."
	reasonGeneric     = "Failed to classify email"
)

// ClassifierServiceImpl implements ClassifierService
type ClassifierServiceImpl struct {
	provider     llm.Provider
	cacheService CacheService
	config       *config.Config
}

// NewClassifierService creates a new classifier service
func NewClassifierService(provider llm.Provider, cacheService CacheService, config *config.Config) *ClassifierServiceImpl {
	return &ClassifierServiceImpl{
		provider:     provider,
		cacheService: cacheService,
		config:       config,
	}
}

// Classify runs the full pipeline: credential check, prompt construction, one
// non-streaming generation call, fence stripping, strict JSON parse and
// normalization. It never returns an error; failures resolve to a fallback
// Classification with category Unknown, confidence 0 and a phrased Reasoning.
func (s *ClassifierServiceImpl) Classify(ctx context.Context, body, date string, opts ClassifyOptions) email.Classification {
	if !llm.HasCredential(s.provider) {
		// Short-circuit before any network activity
		return fallback(reasonMissingKey)
	}

	if opts.UseCache && !opts.ForceRegenerate && s.cacheService != nil {
		if cached, found, err := s.cacheService.GetClassification(ctx, opts.AccountID, opts.EmailID); err == nil && found {
			return cached
		}
	}

	prompt := s.buildPrompt(body, date)

	raw, err := s.provider.Generate(prompt)
	if err != nil {
		return fallbackFor(err)
	}

	result, err := parseClassification(raw)
	if err != nil {
		return fallbackFor(err)
	}

	if opts.UseCache && s.cacheService != nil {
		// Cache failures never fail the classification
		_ = s.cacheService.SaveClassification(ctx, opts.AccountID, opts.EmailID, result)
	}

	return result
}

func (s *ClassifierServiceImpl) buildPrompt(body, date string) string {
	prompt := config.DefaultClassifyPrompt
	if s.config != nil {
		prompt = s.config.LLM.GetClassifyPrompt()
	}
	prompt = strings.ReplaceAll(prompt, "{{body}}", body)
	prompt = strings.ReplaceAll(prompt, "{{date}}", date)
	return prompt
}

// wireClassification is the JSON document the model is instructed to emit.
type wireClassification struct {
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
	SuggestedReply string  `json:"suggested_reply"`
}

// parseClassification strips Markdown code fences, parses the text strictly
// as a single JSON document and normalizes the result: out-of-set categories
// coerce to Unknown and confidence is clamped into [0,1]. String lengths and
// the spam-implies-empty-reply convention are not enforced here.
func parseClassification(raw string) (email.Classification, error) {
	text := stripCodeFences(raw)

	var wire wireClassification
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return email.Classification{}, err
	}

	return email.Classification{
		Category:       email.ParseCategory(wire.Category),
		Confidence:     clamp01(wire.Confidence),
		Reasoning:      wire.Reasoning,
		SuggestedReply: wire.SuggestedReply,
	}, nil
}

// stripCodeFences removes a ``` or ```json wrapper if present.
func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = strings.TrimPrefix(out, "```json")
	} else if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```")
	} else {
		return out
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fallback builds the degraded Classification returned on any failure.
func fallback(reasoning string) email.Classification {
	return email.Classification{
		Category:       email.CategoryUnknown,
		Confidence:     0,
		Reasoning:      reasoning,
		SuggestedReply: "",
	}
}

// fallbackFor selects the user-facing phrasing for a pipeline failure.
func fallbackFor(err error) email.Classification {
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 503:
			return fallback(reasonOverloaded)
		case 401:
			return fallback(reasonInvalidKey)
		case 429:
			return fallback(reasonRateLimited)
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fallback(reasonMalformed)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "overloaded"):
		return fallback(reasonOverloaded)
	case strings.Contains(msg, "api key"):
		return fallback(reasonInvalidKey)
	default:
		return fallback(reasonGeneric)
	}
}
