package tui

import (
	"strings"

	"github.com/derailed/tcell/v2"
)

// bindKeys installs the global key handler. Keys are configurable; the
// uppercase variant of the classify key forces regeneration past the cache.
func (a *App) bindKeys() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Let the focused input field consume its own keys
		if search, ok := a.views["search"]; ok && a.GetFocus() == search {
			return event
		}
		if a.Pages.HasPage(pagePicker) || a.Pages.HasPage(pageSettings) || a.Pages.HasPage(pageReply) {
			return event
		}
		if a.Pages.HasPage(pageHelp) {
			a.closeModal(pageHelp)
			return nil
		}

		if event.Rune() == 0 {
			return event
		}
		if a.handleConfigurableKey(event) {
			return nil
		}
		return event
	})
}

// handleConfigurableKey dispatches a single-rune shortcut from the key map
func (a *App) handleConfigurableKey(event *tcell.EventKey) bool {
	key := string(event.Rune())

	switch key {
	case a.Keys.Classify:
		a.logf("shortcut %q -> classify", key)
		a.classifySelected(false)
		return true
	case a.Keys.SuggestReply:
		a.logf("shortcut %q -> suggest_reply", key)
		a.suggestReplySelected()
		return true
	case a.Keys.Search:
		if search, ok := a.views["search"]; ok {
			a.SetFocus(search)
		}
		return true
	case a.Keys.Folders:
		a.pickFolder()
		return true
	case a.Keys.Accounts:
		a.pickAccount()
		return true
	case a.Keys.ClearFilters:
		a.clearFilters()
		return true
	case a.Keys.SetCategory:
		a.pickCategory()
		return true
	case a.Keys.InvalidateCache:
		a.invalidateCachedClassification()
		return true
	case a.Keys.Settings:
		a.showSettings()
		return true
	case a.Keys.Refresh:
		a.reloadMessages()
		return true
	case a.Keys.Help:
		a.showHelp()
		return true
	case a.Keys.Quit:
		a.Stop()
		return true
	}

	// Uppercase classify key regenerates, bypassing the cache
	if a.Keys.Classify != "" && key == strings.ToUpper(a.Keys.Classify) && key != a.Keys.Classify {
		a.logf("shortcut %q -> classify (force)", key)
		a.classifySelected(true)
		return true
	}

	return false
}
