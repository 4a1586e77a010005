package tui

import (
	"sync/atomic"
	"time"

	"github.com/rithu453/onebox/internal/email"
)

// generation issues monotonically increasing tokens for list loads. A load
// that finishes after a newer one started compares its token against the
// current value and discards its results.
type generation struct {
	n atomic.Uint64
}

// Next starts a new load and returns its token, invalidating older ones.
func (g *generation) Next() uint64 { return g.n.Add(1) }

// IsCurrent reports whether token still identifies the latest load.
func (g *generation) IsCurrent(token uint64) bool { return g.n.Load() == token }

// onSearchChanged debounces free-text input: only the last value typed
// within the debounce window triggers a reload.
func (a *App) onSearchChanged(text string) {
	a.mu.Lock()
	a.currentQuery = text
	if a.searchTimer != nil {
		a.searchTimer.Stop()
	}
	a.searchTimer = time.AfterFunc(a.Config.SearchDebounce(), a.reloadMessages)
	a.mu.Unlock()
}

// setFolderFilter applies a folder constraint immediately, no debounce.
func (a *App) setFolderFilter(folder string) {
	a.mu.Lock()
	a.activeFilters.Folder = folder
	a.mu.Unlock()
	a.reloadMessages()
}

// setAccountFilter applies an account constraint immediately, no debounce.
func (a *App) setAccountFilter(accountID string) {
	a.mu.Lock()
	a.activeFilters.Account = accountID
	a.mu.Unlock()
	a.reloadMessages()
}

// clearFilters resets folder and account constraints. The search text is
// left alone; Escape in the search field clears that.
func (a *App) clearFilters() {
	a.mu.Lock()
	a.activeFilters = email.Filters{}
	a.mu.Unlock()
	a.reloadMessages()
	a.showStatusMessage("Filters cleared")
}

func (a *App) queryState() (string, email.Filters) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentQuery, a.activeFilters
}

// reloadMessages loads the email list in the background. Stale loads are
// discarded by generation token, so rapid query changes cannot leave an
// older result on screen. Safe to call from the event loop: every UI update
// happens on the spawned goroutine via QueueUpdateDraw.
func (a *App) reloadMessages() {
	token := a.loadGen.Next()
	query, filters := a.queryState()
	a.setMessagesLoading(true)

	go func() {
		a.QueueUpdateDraw(func() {
			a.setStatusPersistent("Loading emails...")
		})

		list, err := a.mailboxService.ListEmails(a.ctx, query, filters)
		if !a.loadGen.IsCurrent(token) {
			a.logf("reloadMessages: discarding stale load (token %d)", token)
			return
		}
		a.QueueUpdateDraw(func() {
			if !a.loadGen.IsCurrent(token) {
				return
			}
			a.setMessagesLoading(false)
			if err != nil {
				a.showError("Failed to load emails: " + err.Error())
				return
			}
			a.renderMessageList(list)
			a.setStatusPersistent("")
		})
	}()
}
