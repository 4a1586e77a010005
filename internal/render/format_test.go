package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTextPreserving_Basic(t *testing.T) {
	got := WrapTextPreserving("one two three four five six", 10)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 10, line)
	}
	assert.Equal(t, "one two three four five six",
		strings.ReplaceAll(got, "\n", " "))
}

func TestWrapTextPreserving_QuotePrefix(t *testing.T) {
	got := WrapTextPreserving("> quoted text that runs past the limit", 16)
	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "> "), line)
	}
}

func TestWrapTextPreserving_CodeFenceUntouched(t *testing.T) {
	input := "```\nfunc main() { fmt.Println(strings.Repeat(\"x\", 99)) }\n```"
	assert.Equal(t, input, WrapTextPreserving(input, 10))
}

func TestWrapTextPreserving_LongTokenNotSplit(t *testing.T) {
	url := "https://example.com/a/very/long/path/that/exceeds/width"
	got := WrapTextPreserving("see "+url+" for details", 20)
	assert.Contains(t, got, url)
}

func TestWrapTextPreserving_ZeroWidth(t *testing.T) {
	assert.Equal(t, "unchanged", WrapTextPreserving("unchanged", 0))
}

func TestSanitizeForTerminal(t *testing.T) {
	assert.Equal(t, `it's a "test" - ok...`,
		sanitizeForTerminal("it’s a “test” — ok…"))
	assert.Equal(t, "ab", sanitizeForTerminal("a\u200bb"))
	assert.Equal(t, "ab", sanitizeForTerminal("a\ufeffb"))
	assert.Equal(t, "ab", sanitizeForTerminal("a\u00adb"))
	assert.Equal(t, "a b", sanitizeForTerminal("a\u00a0b"))
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", normalizeNewlines("a\r\nb\rc"))
	assert.Equal(t, "a\n\nb", normalizeNewlines("a\n\n\n\nb"))
}

func TestFormatBodyForTerminal(t *testing.T) {
	got := FormatBodyForTerminal("hello world from a slightly longer sentence\r\n\r\n\r\nnext", 24)
	assert.NotContains(t, got, "\r")
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "\n\n\n")
}
