package llm

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(key string) func() string {
	return func() string { return key }
}

func TestGeminiClient_Generate_RequestShape(t *testing.T) {
	var gotKey string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer srv.Close()

	client := NewGemini(srv.URL, 5*time.Second, testKey("secret-key"))
	out, err := client.Generate("classify this")

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "secret-key", gotKey)

	contents := gotBody["contents"].([]interface{})
	first := contents[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	parts := first["parts"].([]interface{})
	assert.Equal(t, "classify this", parts[0].(map[string]interface{})["text"])

	genCfg := gotBody["generationConfig"].(map[string]interface{})
	assert.Equal(t, float64(0), genCfg["temperature"])
	assert.Equal(t, float64(1024), genCfg["maxOutputTokens"])
}

func TestGeminiClient_Generate_ExtractionFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		envelope string
		want     string
	}{
		{"content_parts", `{"candidates":[{"content":{"parts":[{"text":"a"}]}}]}`, "a"},
		{"candidate_text", `{"candidates":[{"text":"b"}]}`, "b"},
		{"candidate_output", `{"candidates":[{"output":"c"}]}`, "c"},
		{"top_level_text", `{"text":"d"}`, "d"},
		{"parts_win_over_text", `{"candidates":[{"content":{"parts":[{"text":"a"}]},"text":"b"}],"text":"d"}`, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.envelope))
			}))
			defer srv.Close()

			client := NewGemini(srv.URL, 5*time.Second, testKey("k"))
			out, err := client.Generate("p")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGeminiClient_Generate_NoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{}]}`))
	}))
	defer srv.Close()

	client := NewGemini(srv.URL, 5*time.Second, testKey("k"))
	_, err := client.Generate("p")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestGeminiClient_Generate_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	}))
	defer srv.Close()

	client := NewGemini(srv.URL, 5*time.Second, testKey("k"))
	_, err := client.Generate("p")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, statusErr.Body, "overloaded")
}

func TestGeminiClient_Generate_NoCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewGemini(srv.URL, 5*time.Second, testKey(""))
	assert.False(t, client.HasCredential())

	_, err := client.Generate("p")
	assert.Error(t, err)
	assert.Zero(t, calls)
}

func TestGeminiClient_Defaults(t *testing.T) {
	client := NewGemini("", time.Second, nil)
	assert.Equal(t, DefaultGeminiEndpoint, client.Endpoint)
	assert.False(t, client.HasCredential())
}

func TestHasCredential_Helper(t *testing.T) {
	assert.False(t, HasCredential(NewGemini("", time.Second, testKey(""))))
	assert.True(t, HasCredential(NewGemini("", time.Second, testKey("k"))))
	// Providers without key requirements are always ready
	assert.True(t, HasCredential(NewOllama("http://localhost:11434/api/generate", "m", time.Second)))
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{Code: 429, Body: "slow down"}
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "slow down")
	assert.True(t, errors.As(error(err), new(*StatusError)))
}
