package tui

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rithu453/onebox/internal/config"
)

// initLogger initializes a file logger under ~/.config/onebox/onebox.log,
// or the configured LogFile when set. The UI owns the terminal, so logs
// never go to stdout.
func (a *App) initLogger() {
	if a.logger != nil && a.logFile != nil {
		return
	}
	path := a.Config.LogFile
	if path == "" {
		path = filepath.Join(config.DefaultLogDir(), "onebox.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	a.logFile = f
	a.logger = log.New(f, "[onebox] ", log.LstdFlags|log.Lmicroseconds)
}

// closeLogger closes the log file if opened
func (a *App) closeLogger() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func (a *App) logf(format string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
