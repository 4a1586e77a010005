package render

import (
	"strings"
	"testing"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rithu453/onebox/internal/config"
	"github.com/rithu453/onebox/internal/email"
)

func conf(v float64) *float64 { return &v }

func newFrozenRenderer(t *testing.T, now string) *EmailRenderer {
	t.Helper()
	fixed, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)
	er := NewEmailRenderer()
	er.now = func() time.Time { return fixed }
	return er
}

func TestFormatEmailList_Columns(t *testing.T) {
	er := newFrozenRenderer(t, "2024-10-20T14:30:00Z")

	e := email.Email{
		ID:      "1",
		From:    "Sarah Johnson <sarah@techcorp.com>",
		Subject: "Re: Product Demo Request",
		Date:    "2024-10-20T12:30:00Z",
	}
	row, color := er.FormatEmailList(e, 80)

	parts := strings.Split(row, " | ")
	require.Len(t, parts, 3)
	assert.Equal(t, "Sarah Johnson", strings.TrimSpace(parts[0]))
	assert.Equal(t, "Re: Product Demo Request", strings.TrimSpace(parts[1]))
	assert.Equal(t, "2h", strings.TrimSpace(parts[2]))
	assert.True(t, strings.HasSuffix(parts[2], "2h"), "date column is right-aligned")
	assert.Equal(t, tcell.ColorWhite, color)
}

func TestFormatEmailList_CategoryChipAndColor(t *testing.T) {
	er := newFrozenRenderer(t, "2024-10-20T14:30:00Z")

	e := email.Email{
		ID:         "1",
		From:       "lead@example.com",
		Subject:    "Pricing",
		Date:       "2024-10-19T12:30:00Z",
		Category:   email.CategoryInterested,
		Confidence: conf(0.8),
		Reasoning:  "positive",
	}
	row, color := er.FormatEmailList(e, 80)

	assert.Contains(t, row, "[Interested 80%]")
	assert.Equal(t, tcell.GetColor("green"), color)
}

func TestFormatEmailList_MissingFields(t *testing.T) {
	er := newFrozenRenderer(t, "2024-10-20T14:30:00Z")

	row, _ := er.FormatEmailList(email.Email{ID: "x"}, 80)
	assert.Contains(t, row, "(No sender)")
	assert.Contains(t, row, "(No subject)")
}

func TestExtractSenderName(t *testing.T) {
	tests := []struct {
		from string
		want string
	}{
		{"Sarah Johnson <sarah@techcorp.com>", "Sarah Johnson"},
		{`"Johnson, Sarah" <sarah@techcorp.com>`, "Johnson, Sarah"},
		{"sarah@techcorp.com", "sarah"},
		{"<sarah@techcorp.com>", "sarah"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractSenderName(tt.from), tt.from)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	er := newFrozenRenderer(t, "2024-10-20T14:30:00Z")

	tests := []struct {
		date string
		want string
	}{
		{"2024-10-20T14:29:40Z", "now"},
		{"2024-10-20T14:00:00Z", "30m"},
		{"2024-10-20T09:30:00Z", "5h"},
		{"2024-10-17T14:30:00Z", "3d"},
		{"2024-09-01T00:00:00Z", "Sep 1"},
		{"not a date", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, er.formatRelativeTime(parseDate(tt.date)), tt.date)
	}
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "", FormatConfidence(nil))
	assert.Equal(t, "80%", FormatConfidence(conf(0.8)))
	assert.Equal(t, "0%", FormatConfidence(conf(0)))
	assert.Equal(t, "100%", FormatConfidence(conf(1)))
}

func TestFormatEmailHeaders(t *testing.T) {
	er := NewEmailRenderer()

	e := email.Email{
		From:       "sarah@techcorp.com",
		To:         "work@company.com",
		Subject:    "Demo",
		Date:       "2024-10-20T12:30:00Z",
		Category:   email.CategoryMeetingBooked,
		Confidence: conf(0.92),
		Reasoning:  "confirms a slot",
	}
	got := er.FormatEmailHeaders(e)

	assert.Contains(t, got, "[yellow]From:[-] sarah@techcorp.com")
	assert.Contains(t, got, "[yellow]To:[-] work@company.com")
	assert.Contains(t, got, "[yellow]Category:[-] Meeting Booked (92%)")
	assert.Contains(t, got, "[yellow]Reasoning:[-] confirms a slot")
}

func TestFormatEmailHeaders_Unclassified(t *testing.T) {
	er := NewEmailRenderer()

	got := er.FormatEmailHeaders(email.Email{From: "a@b.com", Subject: "s"})
	assert.NotContains(t, got, "Category:")
	assert.NotContains(t, got, "Reasoning:")
}

func TestColorerFollowsTheme(t *testing.T) {
	theme := config.DefaultTheme()
	theme.Categories["Spam"] = "purple"

	ec := NewEmailColorer()
	ec.UpdateFromStyles(theme)

	assert.Equal(t, tcell.GetColor("purple"), ec.CategoryColor(email.CategorySpam))
	assert.Equal(t, ec.DefaultColor, ec.CategoryColor(""))
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, "abc   ", fitWidth("abc", 6))
	assert.Equal(t, "abc...", fitWidth("abcdefgh", 6))
	assert.Equal(t, "", fitWidth("abc", 0))
}

func TestRightFit(t *testing.T) {
	assert.Equal(t, "   abc", rightFit("abc", 6))
	assert.Equal(t, "cdefgh", rightFit("abcdefgh", 6))
}
