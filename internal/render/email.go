package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rithu453/onebox/internal/config"
	"github.com/rithu453/onebox/internal/email"
)

// EmailColorer maps triage categories to list colors.
type EmailColorer struct {
	CategoryColors map[email.Category]tcell.Color
	DefaultColor   tcell.Color
}

// NewEmailColorer creates a colorer preloaded with the built-in theme.
func NewEmailColorer() *EmailColorer {
	ec := &EmailColorer{DefaultColor: tcell.ColorWhite}
	ec.UpdateFromStyles(config.DefaultTheme())
	return ec
}

// UpdateFromStyles replaces category colors from a loaded theme.
func (ec *EmailColorer) UpdateFromStyles(colors *config.ColorsConfig) {
	if colors == nil {
		return
	}
	m := make(map[email.Category]tcell.Color, len(colors.Categories))
	for name, colorName := range colors.Categories {
		m[email.ParseCategory(name)] = tcell.GetColor(colorName)
	}
	ec.CategoryColors = m
}

// CategoryColor returns the color for a category, or the default for
// unclassified records.
func (ec *EmailColorer) CategoryColor(c email.Category) tcell.Color {
	if color, ok := ec.CategoryColors[c]; ok {
		return color
	}
	return ec.DefaultColor
}

// EmailRenderer handles email rendering and formatting
type EmailRenderer struct {
	colorer      *EmailColorer
	headerKeyTag string // e.g., "[yellow]"
	now          func() time.Time
}

// NewEmailRenderer creates a new email renderer
func NewEmailRenderer() *EmailRenderer {
	return &EmailRenderer{
		colorer:      NewEmailColorer(),
		headerKeyTag: "[yellow]",
		now:          time.Now,
	}
}

// UpdateFromConfig updates the renderer with new theme colors
func (er *EmailRenderer) UpdateFromConfig(colors *config.ColorsConfig) {
	er.colorer.UpdateFromStyles(colors)
}

// FormatEmailList formats an email for list display with fixed columns:
// Sender | Subject(+category chip) | Date
func (er *EmailRenderer) FormatEmailList(e email.Email, maxWidth int) (string, tcell.Color) {
	sender := extractSenderName(e.From)
	if sender == "" {
		sender = "(No sender)"
	}
	subject := e.Subject
	if subject == "" {
		subject = "(No subject)"
	}
	date := er.formatRelativeTime(parseDate(e.Date))

	// Keep a minimum width for usability
	if maxWidth < 40 {
		maxWidth = 40
	}
	senderWidth := 22
	dateWidth := 8
	suffix := categoryChip(e)
	suffixWidth := runewidth.StringWidth(suffix)
	// account for separators (" | ", " | ") = 6
	subjectWidth := maxWidth - senderWidth - dateWidth - 6 - suffixWidth
	if subjectWidth < 10 {
		subjectWidth = 10
	}

	formatted := fmt.Sprintf("%s | %s%s | %s",
		fitWidth(sender, senderWidth),
		fitWidth(subject, subjectWidth),
		suffix,
		rightFit(date, dateWidth))

	return formatted, er.colorer.CategoryColor(e.Category)
}

// FormatEmailHeaders builds the header block for the detail pane using
// tview color tags.
func (er *EmailRenderer) FormatEmailHeaders(e email.Email) string {
	var b strings.Builder
	key := er.headerKeyTag

	fmt.Fprintf(&b, "%sFrom:[-] %s\n", key, e.From)
	if e.To != "" {
		fmt.Fprintf(&b, "%sTo:[-] %s\n", key, e.To)
	}
	fmt.Fprintf(&b, "%sSubject:[-] %s\n", key, e.Subject)
	if e.Date != "" {
		fmt.Fprintf(&b, "%sDate:[-] %s\n", key, er.formatDate(parseDate(e.Date)))
	}
	if e.Classified() {
		fmt.Fprintf(&b, "%sCategory:[-] %s", key, e.Category)
		if conf := FormatConfidence(e.Confidence); conf != "" {
			fmt.Fprintf(&b, " (%s)", conf)
		}
		b.WriteByte('\n')
		if e.Reasoning != "" {
			fmt.Fprintf(&b, "%sReasoning:[-] %s\n", key, e.Reasoning)
		}
	}
	return b.String()
}

// FormatConfidence renders a confidence as a whole percentage, e.g. "80%".
// Nil means the record has never been classified and yields "".
func FormatConfidence(confidence *float64) string {
	if confidence == nil {
		return ""
	}
	return fmt.Sprintf("%.0f%%", *confidence*100)
}

// categoryChip returns a suffix like " [Interested 80%]" for classified records.
func categoryChip(e email.Email) string {
	if !e.Classified() {
		return ""
	}
	if conf := FormatConfidence(e.Confidence); conf != "" {
		return fmt.Sprintf(" [%s %s]", e.Category, conf)
	}
	return fmt.Sprintf(" [%s]", e.Category)
}

// extractSenderName returns the display name from "Name <addr>", or the
// mailbox part of a bare address.
func extractSenderName(from string) string {
	from = strings.TrimSpace(from)
	if from == "" {
		return ""
	}
	if i := strings.Index(from, "<"); i >= 0 {
		name := strings.TrimSpace(strings.Trim(from[:i], `" `))
		if name != "" {
			return name
		}
		from = strings.Trim(from[i:], "<> ")
	}
	if i := strings.Index(from, "@"); i > 0 {
		return from[:i]
	}
	return from
}

// parseDate parses an RFC 3339 timestamp, returning the zero time on failure.
func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// fitWidth truncates and pads on the right to fit a fixed display width
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "...")
	pad := width - runewidth.StringWidth(s)
	if pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// rightFit truncates and right-aligns/pads to width
func rightFit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := runewidth.StringWidth(s); w > width {
		s = runewidth.TruncateLeft(s, w-width, "")
	}
	pad := width - runewidth.StringWidth(s)
	if pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func (er *EmailRenderer) formatRelativeTime(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	diff := er.now().Sub(date)

	if diff < time.Minute {
		return "now"
	} else if diff < time.Hour {
		return fmt.Sprintf("%dm", int(diff.Minutes()))
	} else if diff < 24*time.Hour {
		return fmt.Sprintf("%dh", int(diff.Hours()))
	} else if diff < 7*24*time.Hour {
		return fmt.Sprintf("%dd", int(diff.Hours()/24))
	}
	return date.Format("Jan 2")
}

func (er *EmailRenderer) formatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format("Mon, 02 Jan 2006 15:04")
}
