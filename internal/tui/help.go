package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"

	"github.com/rithu453/onebox/internal/config"
)

// showHelp overlays the shortcut reference. Any key dismisses it.
func (a *App) showHelp() {
	text := tview.NewTextView().SetDynamicColors(true)
	text.SetBorder(true).
		SetBorderColor(a.themeColor("border")).
		SetTitle(" Help ").
		SetTitleColor(a.themeColor("title"))
	text.SetText(buildHelpText(a.Keys))

	frame := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(text, 18, 0, true).
			AddItem(nil, 0, 1, false), 50, 0, true).
		AddItem(nil, 0, 1, false)

	a.Pages.AddPage(pageHelp, frame, true, true)
	a.SetFocus(text)
}

// buildHelpText renders the shortcut table from the active key map
func buildHelpText(keys config.KeyBindings) string {
	rows := []struct {
		key    string
		action string
	}{
		{keys.Classify, "Classify selected email"},
		{strings.ToUpper(keys.Classify), "Classify, bypassing cache"},
		{keys.SuggestReply, "Suggest a reply"},
		{keys.Search, "Search"},
		{keys.Folders, "Filter by folder"},
		{keys.Accounts, "Filter by account"},
		{keys.ClearFilters, "Clear filters"},
		{keys.SetCategory, "Set category by hand"},
		{keys.InvalidateCache, "Drop cached classification"},
		{keys.Settings, "Settings (API key)"},
		{keys.Refresh, "Reload emails"},
		{keys.Quit, "Quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, r := range rows {
		if r.key == "" {
			continue
		}
		fmt.Fprintf(&b, "  [yellow]%-3s[-] %s\n", r.key, r.action)
	}
	return b.String()
}
