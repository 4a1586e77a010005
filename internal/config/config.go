package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultClassifyPrompt is the fixed instruction prompt for email triage.
// {{body}} and {{date}} are substituted at request time.
const DefaultClassifyPrompt = `You are an assistant that reads a single email and returns a compact machine-readable classification and a short suggested reply. Output must be valid JSON only, no extra text, no markup.

Rules:
1. Classify into one label: "Interested", "Not Interested", "Unknown", "Spam", or "Meeting Booked".
2. Provide a numeric confidence between 0.0 and 1.0.
3. Provide one-sentence human-readable reasoning.
4. Provide a concise suggested_reply (1-2 sentences). If label is Spam, suggested_reply must be an empty string.
5. Keep suggested_reply professional and actionable.
6. Keep all string fields under 300 characters.
7. Do not hallucinate facts. Use only content in the provided email.
8. Output JSON with these exact keys in this order: category, confidence, reasoning, suggested_reply.

Email: """{{body}}"""
Date: {{date}}

Produce the JSON output now.`

// LLMConfig holds all LLM-related configuration
type LLMConfig struct {
	// Core LLM settings
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider"` // gemini, ollama, bedrock
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
	Region   string `json:"region"` // For AWS Bedrock
	APIKey   string `json:"api_key"`
	Timeout  string `json:"timeout"`

	// Caching configuration
	CacheEnabled bool   `json:"cache_enabled"`
	CachePath    string `json:"cache_path"`

	// Template file path (relative to config dir or absolute)
	ClassifyTemplate string `json:"classify_template"`

	// Inline prompt override (optional - takes precedence over file)
	ClassifyPrompt string `json:"classify_prompt,omitempty"`
}

// UIConfig holds view-layer timing and appearance settings
type UIConfig struct {
	// SearchDebounceMs is the quiescence window before a typed query commits
	SearchDebounceMs int `json:"search_debounce_ms"`
	// ListDelayMs simulates mailbox latency so the loading state is visible
	ListDelayMs int `json:"list_delay_ms"`

	ShowBorders  bool   `json:"show_borders"`
	ShowTitles   bool   `json:"show_titles"`
	CurrentTheme string `json:"current_theme"`
	ThemeDir     string `json:"theme_dir"` // Custom themes directory (empty = default)
}

// KeyBindings defines keyboard shortcuts for the TUI
type KeyBindings struct {
	Classify        string `json:"classify"`
	SuggestReply    string `json:"suggest_reply"`
	Search          string `json:"search"`
	Folders         string `json:"folders"`
	Accounts        string `json:"accounts"`
	ClearFilters    string `json:"clear_filters"`
	SetCategory     string `json:"set_category"`
	InvalidateCache string `json:"invalidate_cache"`
	Settings        string `json:"settings"`
	Refresh         string `json:"refresh"`
	Help            string `json:"help"`
	Quit            string `json:"quit"`
}

// Config holds all configuration for the onebox application
type Config struct {
	// LLM configuration (unified)
	LLM LLMConfig `json:"llm"`

	// UI behavior
	UI UIConfig `json:"ui"`

	// Keyboard shortcuts
	Keys KeyBindings `json:"keys"`

	// Logging
	LogFile string `json:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM:     DefaultLLMConfig(),
		UI:      DefaultUIConfig(),
		Keys:    DefaultKeyBindings(),
		LogFile: "",
	}
}

// DefaultLLMConfig returns default LLM configuration
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Enabled:          true,
		Provider:         "gemini",
		Model:            "gemini-2.5-flash",
		Endpoint:         "", // empty selects the provider default
		Timeout:          "30s",
		CacheEnabled:     true,
		CachePath:        "",
		ClassifyTemplate: "templates/ai/classify.md",
		ClassifyPrompt:   "",
	}
}

// DefaultUIConfig returns default UI behavior settings
func DefaultUIConfig() UIConfig {
	return UIConfig{
		SearchDebounceMs: 400,
		ListDelayMs:      300,
		ShowBorders:      true,
		ShowTitles:       true,
		CurrentTheme:     "onebox-dark",
		ThemeDir:         "",
	}
}

// DefaultKeyBindings returns default keyboard shortcuts
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Classify:        "c",
		SuggestReply:    "g",
		Search:          "/",
		Folders:         "f",
		Accounts:        "a",
		ClearFilters:    "x",
		SetCategory:     "l",
		InvalidateCache: "D",
		Settings:        "S",
		Refresh:         "R",
		Help:            "?",
		Quit:            "q",
	}
}

// LoadConfig loads configuration from file over defaults
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "onebox", "config.json")
}

// DefaultCacheDir returns the default cache directory path
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "onebox", "cache")
}

// DefaultLogDir returns the default log directory path
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "onebox")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLLMTimeout returns parsed timeout for LLM
func (c *Config) GetLLMTimeout() time.Duration {
	if c.LLM.Timeout != "" {
		if d, err := time.ParseDuration(c.LLM.Timeout); err == nil {
			return d
		}
	}
	return 30 * time.Second
}

// SearchDebounce returns the debounce window for typed search input
func (c *Config) SearchDebounce() time.Duration {
	if c.UI.SearchDebounceMs > 0 {
		return time.Duration(c.UI.SearchDebounceMs) * time.Millisecond
	}
	return 400 * time.Millisecond
}

// ListDelay returns the simulated mailbox latency for listings
func (c *Config) ListDelay() time.Duration {
	if c.UI.ListDelayMs < 0 {
		return 0
	}
	return time.Duration(c.UI.ListDelayMs) * time.Millisecond
}

// LoadTemplate loads a template with proper priority: file first, then inline, then fallback
func LoadTemplate(templatePath, inlinePrompt, fallbackPrompt string) string {
	// First priority: Try to load from template file if path is specified
	if strings.TrimSpace(templatePath) != "" {
		var fullPath string
		if filepath.IsAbs(templatePath) {
			fullPath = templatePath
		} else {
			configDir := filepath.Dir(DefaultConfigPath())
			fullPath = filepath.Join(configDir, templatePath)
		}

		if content, err := os.ReadFile(fullPath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	// Second priority: Use inline prompt if provided
	if strings.TrimSpace(inlinePrompt) != "" {
		return inlinePrompt
	}

	// Final fallback: Use provided fallback prompt
	return fallbackPrompt
}

// GetClassifyPrompt returns the classification prompt, loading from template file if needed
func (c *LLMConfig) GetClassifyPrompt() string {
	return LoadTemplate(c.ClassifyTemplate, c.ClassifyPrompt, DefaultClassifyPrompt)
}
