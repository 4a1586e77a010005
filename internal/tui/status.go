package tui

import (
	"fmt"
	"time"

	"github.com/derailed/tview"
)

func (a *App) statusBaseline() string {
	return "onebox | Press ? for help | Press q to quit"
}

// showStatusMessage displays a transient message in the status bar
func (a *App) showStatusMessage(msg string) {
	status, ok := a.views["status"].(*tview.TextView)
	if !ok {
		return
	}
	status.SetText(fmt.Sprintf("onebox | %s", msg))
	go func() {
		time.Sleep(3 * time.Second)
		a.QueueUpdateDraw(func() {
			if status, ok := a.views["status"].(*tview.TextView); ok {
				status.SetText(a.statusBaseline())
			}
		})
	}()
}

// setStatusPersistent sets the status bar text without auto-clearing
func (a *App) setStatusPersistent(msg string) {
	status, ok := a.views["status"].(*tview.TextView)
	if !ok {
		return
	}
	if msg == "" {
		status.SetText(a.statusBaseline())
		return
	}
	status.SetText(fmt.Sprintf("onebox | %s", msg))
}

// showError shows an error message via the status bar
func (a *App) showError(msg string) {
	a.logf("error: %s", msg)
	a.showStatusMessage(fmt.Sprintf("[%s]%s[-]", a.currentTheme.UI.Error, msg))
}
