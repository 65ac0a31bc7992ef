package tui

import (
	"log/slog"
	"sync"

	"github.com/dgallion1/txtread/internal/document"
	"github.com/dgallion1/txtread/internal/session"
	"github.com/gdamore/tcell/v2"
)

// Submitter queues session events; pipeline.Orchestrator implements it.
type Submitter interface {
	Submit(ev session.Event) error
}

// model is what the screen shows. Guarded by App.mu: the view writes it
// from the event loop goroutine, the UI goroutine reads it.
type model struct {
	title      string
	lines      []string
	pageNumber int
	total      int
	notice     *session.Notice
	scroll     int
	loaded     bool
}

// App is a terminal presentation of the reader.
type App struct {
	screen tcell.Screen
	events Submitter
	log    *slog.Logger

	mu    sync.Mutex
	state model
	quit  bool
}

func New(screen tcell.Screen, events Submitter, log *slog.Logger) *App {
	return &App{screen: screen, events: events, log: log}
}

// View returns the session view backed by this terminal.
func (a *App) View() session.View {
	return (*terminalView)(a)
}

type terminalView App

// Send records the message and wakes the UI loop. It never fails: a
// full event queue only delays the redraw until the next event.
func (v *terminalView) Send(msg session.Message) error {
	a := (*App)(v)
	a.mu.Lock()
	switch m := msg.Message.(type) {
	case document.Payload:
		a.state.title = m.Title
		a.state.lines = Paragraphs(m.Text)
		a.state.pageNumber = m.PageNumber
		a.state.total = m.Total
		a.state.scroll = 0
		a.state.notice = nil
		a.state.loaded = true
	case session.Notice:
		a.state.notice = &m
	}
	a.mu.Unlock()

	if err := a.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		a.log.Debug("redraw event dropped", "error", err)
	}
	return nil
}

// Run draws and handles input until the user quits.
func (a *App) Run() {
	a.draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.handleEvent(ev) {
			a.draw()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		return true
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		a.quit = true
		return false
	case tcell.KeyRight, tcell.KeyPgDn:
		a.submit(session.NextPage{})
		return false
	case tcell.KeyLeft, tcell.KeyPgUp:
		a.submit(session.PreviousPage{})
		return false
	case tcell.KeyDown:
		return a.scrollBy(1)
	case tcell.KeyUp:
		return a.scrollBy(-1)
	case tcell.KeyHome:
		return a.scrollBy(-1 << 30)
	case tcell.KeyEnd:
		return a.scrollBy(1 << 30)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.quit = true
		case 'n', ' ':
			a.submit(session.NextPage{})
		case 'p', 'b':
			a.submit(session.PreviousPage{})
		case 'r':
			a.submit(session.ReloadRequested{})
		case 'j':
			return a.scrollBy(1)
		case 'k':
			return a.scrollBy(-1)
		}
	}
	return false
}

func (a *App) submit(ev session.Event) {
	if err := a.events.Submit(ev); err != nil {
		a.log.Error("submit key event", "error", err)
	}
}

// scrollBy moves within the current page, clamped to its lines.
func (a *App) scrollBy(delta int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, h := a.screen.Size()
	maxScroll := max(len(a.state.lines)-bodyHeight(h), 0)
	next := min(max(a.state.scroll+delta, 0), maxScroll)
	if next == a.state.scroll {
		return false
	}
	a.state.scroll = next
	return true
}
