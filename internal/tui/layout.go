package tui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// initComponents builds the main layout: a selectable list on the left, the
// email detail (header + body) on the right, a search input above the list
// and a status bar at the bottom.
func (a *App) initComponents() {
	list := tview.NewTable().SetSelectable(true, false)
	list.SetBorder(a.Config.UI.ShowBorders).
		SetBorderColor(a.themeColor("border")).
		SetTitleColor(a.themeColor("title")).
		SetTitleAlign(tview.AlignCenter)
	if a.Config.UI.ShowTitles {
		list.SetTitle(" Emails ")
	}
	list.SetSelectionChangedFunc(func(row, _ int) {
		ids := a.GetMessageIDs()
		if row >= 0 && row < len(ids) {
			a.SetCurrentMessageID(ids[row])
			a.showMessage(ids[row])
		}
	})

	search := tview.NewInputField().
		SetLabel(" / ").
		SetFieldBackgroundColor(tcell.ColorDefault)
	search.SetChangedFunc(a.onSearchChanged)
	search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			search.SetText("")
		}
		a.SetFocus(list)
	})

	header := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	header.SetTextColor(a.themeColor("title"))

	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetScrollable(true)

	textContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	textContainer.SetBorder(a.Config.UI.ShowBorders).
		SetBorderColor(a.themeColor("border")).
		SetTitleColor(a.themeColor("title")).
		SetTitleAlign(tview.AlignCenter)
	if a.Config.UI.ShowTitles {
		textContainer.SetTitle(" Email ")
	}
	textContainer.AddItem(header, 0, 1, false)
	textContainer.AddItem(text, 0, 3, false)

	listContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	listContainer.AddItem(search, 1, 0, false)
	listContainer.AddItem(list, 0, 1, true)

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetTextColor(a.themeColor("status"))
	status.SetText(a.statusBaseline())

	content := tview.NewFlex().
		AddItem(listContainer, 0, 2, true).
		AddItem(textContainer, 0, 3, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(status, 1, 0, false)

	a.views["list"] = list
	a.views["search"] = search
	a.views["header"] = header
	a.views["text"] = text
	a.views["status"] = status

	a.Pages.AddPage("main", root, true, true)
}
