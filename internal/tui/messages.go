package tui

import (
	"fmt"

	"github.com/derailed/tview"

	"github.com/rithu453/onebox/internal/email"
	"github.com/rithu453/onebox/internal/render"
)

// renderMessageList rebuilds the list table from a fresh result set and
// keeps the selection on the previously selected email when it survives.
func (a *App) renderMessageList(list []email.Email) {
	table, ok := a.views["list"].(*tview.Table)
	if !ok {
		return
	}

	previous := a.GetCurrentMessageID()

	a.mu.Lock()
	a.messagesMeta = list
	a.ids = make([]string, len(list))
	for i, e := range list {
		a.ids[i] = e.ID
	}
	a.mu.Unlock()

	table.Clear()
	width := a.listWidth()
	selectRow := 0
	for i, e := range list {
		row, color := a.emailRenderer.FormatEmailList(e, width)
		cell := tview.NewTableCell(row).SetTextColor(color).SetExpansion(1)
		table.SetCell(i, 0, cell)
		if e.ID == previous {
			selectRow = i
		}
	}

	if a.Config.UI.ShowTitles {
		table.SetTitle(fmt.Sprintf(" Emails (%d) ", len(list)))
	}

	if len(list) == 0 {
		a.SetCurrentMessageID("")
		a.clearMessageView()
		return
	}
	table.Select(selectRow, 0)
	a.SetCurrentMessageID(list[selectRow].ID)
	a.showMessage(list[selectRow].ID)
}

// reformatListItems re-renders rows after a terminal resize
func (a *App) reformatListItems() {
	table, ok := a.views["list"].(*tview.Table)
	if !ok {
		return
	}
	a.mu.RLock()
	list := a.messagesMeta
	a.mu.RUnlock()

	width := a.listWidth()
	for i, e := range list {
		row, color := a.emailRenderer.FormatEmailList(e, width)
		table.SetCell(i, 0, tview.NewTableCell(row).SetTextColor(color).SetExpansion(1))
	}
}

// refreshMessageRow re-renders a single updated record in place and, when
// selected, its detail view.
func (a *App) refreshMessageRow(updated email.Email) {
	table, ok := a.views["list"].(*tview.Table)
	if !ok {
		return
	}
	a.mu.Lock()
	for i := range a.messagesMeta {
		if a.messagesMeta[i].ID == updated.ID {
			a.messagesMeta[i] = updated
			row, color := a.emailRenderer.FormatEmailList(updated, a.listWidth())
			table.SetCell(i, 0, tview.NewTableCell(row).SetTextColor(color).SetExpansion(1))
			break
		}
	}
	a.mu.Unlock()

	if a.GetCurrentMessageID() == updated.ID {
		a.showMessage(updated.ID)
	}
}

// showMessage renders the selected email into the detail pane
func (a *App) showMessage(id string) {
	e, ok := a.mailboxService.GetEmail(id)
	if !ok {
		a.clearMessageView()
		return
	}

	if header, ok := a.views["header"].(*tview.TextView); ok {
		header.SetText(a.emailRenderer.FormatEmailHeaders(e))
	}
	if text, ok := a.views["text"].(*tview.TextView); ok {
		wrap := a.screenWidth * 3 / 5
		if wrap < 40 {
			wrap = 80
		}
		text.SetText(render.FormatBodyForTerminal(e.Body, wrap))
		text.ScrollToBeginning()
	}
}

func (a *App) clearMessageView() {
	if header, ok := a.views["header"].(*tview.TextView); ok {
		header.SetText("")
	}
	if text, ok := a.views["text"].(*tview.TextView); ok {
		text.SetText("No email selected")
	}
}

// listWidth estimates the usable width of the list column
func (a *App) listWidth() int {
	if a.screenWidth <= 0 {
		return 80
	}
	return a.screenWidth * 2 / 5
}
