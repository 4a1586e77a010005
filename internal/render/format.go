package render

import (
	"strings"
	"unicode"
)

// FormatBodyForTerminal prepares a plain-text body for the detail pane:
// newlines are normalized, lines are wrapped to width preserving quote
// prefixes and code fences, and glyphs that render poorly in terminals are
// replaced with ASCII equivalents.
func FormatBodyForTerminal(body string, wrapWidth int) string {
	out := normalizeNewlines(body)
	if wrapWidth > 0 {
		out = WrapTextPreserving(out, wrapWidth)
	}
	return sanitizeBodyPreservingCode(out)
}

// WrapTextPreserving wraps text to width preserving quotes (> ) and code
// blocks. Tokens are never split, so URLs stay intact even past the width.
func WrapTextPreserving(input string, width int) string {
	if width <= 0 {
		return input
	}
	lines := strings.Split(normalizeNewlines(input), "\n")
	var out strings.Builder
	inCode := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}
		if inCode {
			out.WriteString(line)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}
		// Quote prefix (e.g., "> ") carries over to every wrapped line
		prefix := ""
		trimmed := line
		for strings.HasPrefix(trimmed, "> ") {
			prefix += "> "
			trimmed = strings.TrimPrefix(trimmed, "> ")
		}
		tokens := strings.Fields(trimmed)
		if len(tokens) == 0 {
			out.WriteString(prefix)
			if i < len(lines)-1 {
				out.WriteByte('\n')
			}
			continue
		}
		cur := prefix
		for ti, tok := range tokens {
			switch {
			case len(cur) == len(prefix):
				// first token on the line goes in regardless of width
				cur += tok
			case len(cur)+1+len(tok) <= width:
				cur += " " + tok
			default:
				out.WriteString(strings.TrimRight(cur, " "))
				out.WriteByte('\n')
				cur = prefix + tok
			}
			if ti == len(tokens)-1 {
				out.WriteString(strings.TrimRight(cur, " "))
			}
		}
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// sanitizeBodyPreservingCode applies glyph sanitization to non-code lines
func sanitizeBodyPreservingCode(s string) string {
	lines := strings.Split(s, "\n")
	inCode := false
	for i, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		lines[i] = sanitizeForTerminal(ln)
	}
	return strings.Join(lines, "\n")
}

// sanitizeForTerminal replaces common rich-text glyphs with ASCII-safe
// equivalents and drops zero-width characters and control characters.
func sanitizeForTerminal(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\u00A0', '\u202F': // no-break spaces
			b.WriteRune(' ')
		case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u00AD', '\u2060':
			// zero-width, BOM, soft hyphen: drop
		case '\u2013', '\u2014':
			b.WriteRune('-')
		case '\u2018', '\u2019':
			b.WriteRune('\'')
		case '\u201C', '\u201D':
			b.WriteRune('"')
		case '\u2026':
			b.WriteString("...")
		default:
			if unicode.IsControl(r) && r != '\n' && r != '\t' {
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
