package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ColorsConfig describes a UI theme loaded from a YAML file.
type ColorsConfig struct {
	Name string `yaml:"name"`

	UI struct {
		Title  string `yaml:"title"`
		Border string `yaml:"border"`
		Focus  string `yaml:"focus"`
		Status string `yaml:"status"`
		Error  string `yaml:"error"`
		Hint   string `yaml:"hint"`
	} `yaml:"ui"`

	// Categories maps a triage category to a color name
	Categories map[string]string `yaml:"categories"`
}

// DefaultTheme returns the built-in onebox-dark theme.
func DefaultTheme() *ColorsConfig {
	theme := &ColorsConfig{Name: "onebox-dark"}
	theme.UI.Title = "aqua"
	theme.UI.Border = "gray"
	theme.UI.Focus = "dodgerblue"
	theme.UI.Status = "green"
	theme.UI.Error = "red"
	theme.UI.Hint = "darkgray"
	theme.Categories = map[string]string{
		"Interested":     "green",
		"Not Interested": "orange",
		"Unknown":        "gray",
		"Spam":           "red",
		"Meeting Booked": "dodgerblue",
	}
	return theme
}

// ThemeLoader handles loading themes from a directory of YAML files.
type ThemeLoader struct {
	themesDir string
}

// NewThemeLoader creates a new theme loader
func NewThemeLoader(themesDir string) *ThemeLoader {
	return &ThemeLoader{themesDir: themesDir}
}

// LoadThemeFromFile loads a theme from a YAML file, trying the themes
// directory first and then the path as given.
func (tl *ThemeLoader) LoadThemeFromFile(filename string) (*ColorsConfig, error) {
	path := filepath.Join(tl.themesDir, filename)
	if !fileExists(path) {
		path = filename
		if !fileExists(path) {
			return nil, fmt.Errorf("theme file not found: %s", filename)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", filename, err)
	}
	return theme, nil
}

// LoadTheme resolves a theme by name ("<name>.yaml" in the themes dir),
// falling back to the built-in default when the file is missing or invalid.
func (tl *ThemeLoader) LoadTheme(name string) *ColorsConfig {
	if name == "" || name == "onebox-dark" {
		return DefaultTheme()
	}
	theme, err := tl.LoadThemeFromFile(name + ".yaml")
	if err != nil {
		return DefaultTheme()
	}
	return theme
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
