package tui

import (
	"errors"
	"fmt"

	"github.com/rithu453/onebox/internal/services"
)

// classifySelected runs the classification pipeline for the selected email
// and applies the result to the record. force bypasses the cache.
func (a *App) classifySelected(force bool) {
	id := a.GetCurrentMessageID()
	if id == "" {
		a.showError("No email selected")
		return
	}
	if a.isClassifyInFlight(id) {
		a.showStatusMessage("Classification already in progress")
		return
	}
	e, ok := a.mailboxService.GetEmail(id)
	if !ok {
		a.showError("Email not found")
		return
	}

	a.setClassifyInFlight(id, true)
	a.setStatusPersistent("Classifying...")
	a.logf("classifySelected: id=%s force=%v", id, force)

	go func() {
		defer a.setClassifyInFlight(id, false)

		c := a.classifierService.Classify(a.ctx, e.Body, e.Date, services.ClassifyOptions{
			AccountID:       e.AccountID,
			EmailID:         id,
			UseCache:        a.Config.LLM.CacheEnabled,
			ForceRegenerate: force,
		})
		updated, err := a.mailboxService.ApplyClassification(id, c)

		a.QueueUpdateDraw(func() {
			if err != nil {
				a.showError("Failed to apply classification: " + err.Error())
				return
			}
			a.refreshMessageRow(updated)
			a.showStatusMessage(fmt.Sprintf("Classified as %s", c.Category))
		})
	}()
}

// suggestReplySelected resolves a suggested reply for the selected email
// and shows it in a modal.
func (a *App) suggestReplySelected() {
	id := a.GetCurrentMessageID()
	if id == "" {
		a.showError("No email selected")
		return
	}
	e, ok := a.mailboxService.GetEmail(id)
	if !ok {
		a.showError("Email not found")
		return
	}

	a.setStatusPersistent("Suggesting reply...")
	a.logf("suggestReplySelected: id=%s", id)

	go func() {
		reply, err := a.replyService.SuggestReply(a.ctx, id, e.Body)
		a.QueueUpdateDraw(func() {
			a.setStatusPersistent("")
			if err != nil {
				if errors.Is(err, services.ErrMissingInput) {
					a.showError("No email body available")
				} else {
					a.showError("Failed to suggest reply: " + err.Error())
				}
				return
			}
			a.showReplyModal(e.Subject, reply)
		})
	}()
}

// invalidateCachedClassification drops the cached result for the selected
// email so the next classification regenerates.
func (a *App) invalidateCachedClassification() {
	id := a.GetCurrentMessageID()
	if id == "" || a.cacheService == nil {
		return
	}
	e, ok := a.mailboxService.GetEmail(id)
	if !ok {
		return
	}
	go func() {
		if err := a.cacheService.InvalidateClassification(a.ctx, e.AccountID, id); err != nil {
			a.logf("invalidateCachedClassification: %v", err)
			return
		}
		a.QueueUpdateDraw(func() {
			a.showStatusMessage("Cached classification invalidated")
		})
	}()
}
