package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/rithu453/onebox/internal/email"
)

const (
	pageReply    = "reply"
	pagePicker   = "picker"
	pageSettings = "settings"
	pageHelp     = "help"
)

func (a *App) closeModal(page string) {
	a.Pages.RemovePage(page)
	if list, ok := a.views["list"]; ok {
		a.SetFocus(list)
	}
}

// showReplyModal presents a suggested reply with copy-to-clipboard. An empty
// reply is a deliberate outcome for spam, shown as such rather than an error.
func (a *App) showReplyModal(subject, reply string) {
	body := reply
	if body == "" {
		body = "(no reply suggested)"
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("Suggested reply to %q:\n\n%s", subject, body)).
		AddButtons([]string{"Copy", "Close"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Copy" {
				if err := clipboard.WriteAll(reply); err != nil {
					a.showError("Failed to copy reply: " + err.Error())
				} else {
					a.showStatusMessage("Reply copied to clipboard")
				}
			}
			a.closeModal(pageReply)
		})

	a.Pages.AddPage(pageReply, modal, true, true)
	a.SetFocus(modal)
}

// showPicker presents a simple list of options and invokes onSelect with the
// chosen value. An empty value means "All".
func (a *App) showPicker(title string, options []pickerOption, onSelect func(value string)) {
	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).
		SetBorderColor(a.themeColor("focus")).
		SetTitle(title).
		SetTitleColor(a.themeColor("title"))

	for _, opt := range options {
		value := opt.value
		list.AddItem(opt.label, "", 0, func() {
			a.closeModal(pagePicker)
			onSelect(value)
		})
	}
	list.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape {
			a.closeModal(pagePicker)
			return nil
		}
		return ev
	})

	frame := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(list, len(options)+2, 0, true).
			AddItem(nil, 0, 1, false), 40, 0, true).
		AddItem(nil, 0, 1, false)

	a.Pages.AddPage(pagePicker, frame, true, true)
	a.SetFocus(list)
}

type pickerOption struct {
	label string
	value string
}

func (a *App) pickFolder() {
	options := []pickerOption{{label: "All folders"}}
	for _, f := range a.mailboxService.Folders() {
		options = append(options, pickerOption{label: f.Name, value: f.ID})
	}
	a.showPicker(" Folder ", options, a.setFolderFilter)
}

func (a *App) pickAccount() {
	options := []pickerOption{{label: "All accounts"}}
	for _, acc := range a.mailboxService.Accounts() {
		options = append(options, pickerOption{
			label: fmt.Sprintf("%s <%s>", acc.Name, acc.Email),
			value: acc.ID,
		})
	}
	a.showPicker(" Account ", options, a.setAccountFilter)
}

// pickCategory lets the user set the triage category by hand. Choosing
// "Clear" resets the record to unclassified.
func (a *App) pickCategory() {
	id := a.GetCurrentMessageID()
	if id == "" {
		a.showError("No email selected")
		return
	}
	options := []pickerOption{{label: "Clear classification"}}
	for _, c := range email.Categories() {
		options = append(options, pickerOption{label: string(c), value: string(c)})
	}
	a.showPicker(" Category ", options, func(value string) {
		updated, err := a.mailboxService.SetCategory(id, email.Category(value))
		if err != nil {
			a.showError("Failed to set category: " + err.Error())
			return
		}
		a.refreshMessageRow(updated)
		if value == "" {
			a.showStatusMessage("Classification cleared")
		} else {
			a.showStatusMessage("Category set to " + value)
		}
	})
}

// showSettings manages the stored API key override.
func (a *App) showSettings() {
	if a.credResolver == nil {
		a.showError("Credential storage not available")
		return
	}
	input := tview.NewInputField().
		SetLabel("Gemini API key: ").
		SetMaskCharacter('*').
		SetFieldWidth(44)

	form := tview.NewForm().AddFormItem(input)
	form.AddButton("Save", func() {
		if err := a.credResolver.SetOverride(input.GetText()); err != nil {
			a.showError("Failed to store API key: " + err.Error())
			return
		}
		a.closeModal(pageSettings)
		a.showStatusMessage("API key stored")
	})
	form.AddButton("Clear stored key", func() {
		if err := a.credResolver.ClearOverride(); err != nil {
			a.showError("Failed to clear API key: " + err.Error())
			return
		}
		a.closeModal(pageSettings)
		a.showStatusMessage("Stored API key cleared, using default")
	})
	form.AddButton("Close", func() {
		a.closeModal(pageSettings)
	})
	form.SetBorder(true).
		SetBorderColor(a.themeColor("focus")).
		SetTitle(" Settings ").
		SetTitleColor(a.themeColor("title"))
	form.SetCancelFunc(func() {
		a.closeModal(pageSettings)
	})

	frame := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(form, 9, 0, true).
			AddItem(nil, 0, 1, false), 60, 0, true).
		AddItem(nil, 0, 1, false)

	a.Pages.AddPage(pageSettings, frame, true, true)
	a.SetFocus(form)
}
