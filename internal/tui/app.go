package tui

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/rithu453/onebox/internal/config"
	"github.com/rithu453/onebox/internal/creds"
	"github.com/rithu453/onebox/internal/email"
	"github.com/rithu453/onebox/internal/render"
	"github.com/rithu453/onebox/internal/services"
)

// App encapsulates the terminal UI and the triage services
type App struct {
	*tview.Application
	Pages  *tview.Pages
	Config *config.Config
	Keys   config.KeyBindings

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
	views  map[string]tview.Primitive

	emailRenderer *render.EmailRenderer
	currentTheme  *config.ColorsConfig

	// List state
	ids              []string
	messagesMeta     []email.Email
	currentMessageID string
	messagesLoading  bool
	screenWidth      int
	screenHeight     int

	// Search/filter state
	currentQuery  string
	activeFilters email.Filters
	searchTimer   *time.Timer
	loadGen       generation

	// Classification in flight, keyed by email ID
	classifyInFlight map[string]bool

	logger  *log.Logger
	logFile *os.File

	mailboxService    services.MailboxService
	classifierService services.ClassifierService
	replyService      services.ReplyService
	cacheService      services.CacheService
	credResolver      *creds.Resolver
}

// NewApp creates the application shell and wires the service layer.
func NewApp(cfg *config.Config, mailbox services.MailboxService, classifier services.ClassifierService, reply services.ReplyService, cache services.CacheService, resolver *creds.Resolver) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Application:       tview.NewApplication(),
		Pages:             tview.NewPages(),
		Config:            cfg,
		Keys:              cfg.Keys,
		ctx:               ctx,
		cancel:            cancel,
		views:             make(map[string]tview.Primitive),
		emailRenderer:     render.NewEmailRenderer(),
		classifyInFlight:  make(map[string]bool),
		mailboxService:    mailbox,
		classifierService: classifier,
		replyService:      reply,
		cacheService:      cache,
		credResolver:      resolver,
	}

	app.initLogger()
	app.applyTheme()
	app.initComponents()
	app.bindKeys()

	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		w, h := screen.Size()
		if w != app.screenWidth || h != app.screenHeight {
			app.screenWidth, app.screenHeight = w, h
			app.reformatListItems()
		}
		return false
	})

	return app
}

// Run starts the application and triggers the initial mailbox load.
func (a *App) Run() error {
	a.SetRoot(a.Pages, true)
	go a.reloadMessages()
	err := a.Application.Run()
	a.cancel()
	a.closeLogger()
	return err
}

// applyTheme loads the configured theme and pushes it into the renderer.
func (a *App) applyTheme() {
	loader := config.NewThemeLoader(a.Config.UI.ThemeDir)
	a.currentTheme = loader.LoadTheme(a.Config.UI.CurrentTheme)
	a.emailRenderer.UpdateFromConfig(a.currentTheme)
}

func (a *App) themeColor(name string) tcell.Color {
	if a.currentTheme == nil {
		return tcell.ColorWhite
	}
	switch name {
	case "title":
		return tcell.GetColor(a.currentTheme.UI.Title)
	case "border":
		return tcell.GetColor(a.currentTheme.UI.Border)
	case "focus":
		return tcell.GetColor(a.currentTheme.UI.Focus)
	case "status":
		return tcell.GetColor(a.currentTheme.UI.Status)
	case "error":
		return tcell.GetColor(a.currentTheme.UI.Error)
	case "hint":
		return tcell.GetColor(a.currentTheme.UI.Hint)
	}
	return tcell.ColorWhite
}

// GetCurrentMessageID returns the id of the selected email
func (a *App) GetCurrentMessageID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentMessageID
}

// SetCurrentMessageID updates the selected email id
func (a *App) SetCurrentMessageID(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentMessageID = id
}

// GetMessageIDs returns a copy of the listed email ids
func (a *App) GetMessageIDs() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.ids))
	copy(out, a.ids)
	return out
}

func (a *App) setMessageIDs(ids []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ids = ids
}

// IsMessagesLoading reports whether a list load is in flight
func (a *App) IsMessagesLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.messagesLoading
}

func (a *App) setMessagesLoading(loading bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messagesLoading = loading
}

func (a *App) setClassifyInFlight(id string, v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v {
		a.classifyInFlight[id] = true
	} else {
		delete(a.classifyInFlight, id)
	}
}

func (a *App) isClassifyInFlight(id string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.classifyInFlight[id]
}
