package session

import (
	"log/slog"
	"sync"

	"github.com/dgallion1/txtread/internal/document"
	"github.com/dgallion1/txtread/internal/settings"
)

// Event is something the session reacts to.
type Event interface {
	event()
}

// ReloadRequested forces a reload (view mounted, restart command).
type ReloadRequested struct{}

// NextPage and PreviousPage move the stored page number by one.
type NextPage struct{}
type PreviousPage struct{}

// ConfigChanged reports that the store changed Key.
type ConfigChanged struct {
	Key string
}

func (ReloadRequested) event() {}
func (NextPage) event()        {}
func (PreviousPage) event()    {}
func (ConfigChanged) event()   {}

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier writes notices to a logger.
type LogNotifier struct {
	Log *slog.Logger
}

func (l LogNotifier) Notify(n Notice) {
	if n.Level == LevelError {
		l.Log.Error("reader notice", "message", n.Message, "error", n.Err)
		return
	}
	l.Log.Warn("reader notice", "message", n.Message, "error", n.Err)
}

// Notifiers fans a notice out to several notifiers.
type Notifiers []Notifier

func (ns Notifiers) Notify(n Notice) {
	for _, x := range ns {
		x.Notify(n)
	}
}

// Session connects the settings store, the loader and the presenter.
// Dispatch must not be called concurrently; State and Current may be.
type Session struct {
	store           settings.Store
	load            Loader
	notifier        Notifier
	presenter       *Presenter
	log             *slog.Logger
	defaultPageSize int

	mu      sync.RWMutex
	state   State
	current *document.Payload
}

// Options configures a Session.
type Options struct {
	Store           settings.Store
	Loader          Loader
	Presenter       *Presenter
	Notifier        Notifier // in addition to the presenter
	Log             *slog.Logger
	DefaultPageSize int
}

func New(opts Options) *Session {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	presenter := opts.Presenter
	if presenter == nil {
		presenter = NewPresenter(log)
	}
	notifiers := Notifiers{presenter}
	if opts.Notifier != nil {
		notifiers = append(notifiers, opts.Notifier)
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = DefaultPageSize
	}
	return &Session{
		store:           opts.Store,
		load:            opts.Loader,
		notifier:        notifiers,
		presenter:       presenter,
		log:             log,
		defaultPageSize: opts.DefaultPageSize,
		state:           State{PageSize: opts.DefaultPageSize, PageNumber: 1},
	}
}

// Presenter returns the presenter payloads are delivered to.
func (s *Session) Presenter() *Presenter {
	return s.presenter
}

// State returns the state of the last reload.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns the last payload emitted.
func (s *Session) Current() (document.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return document.Payload{}, false
	}
	return *s.current, true
}

// Dispatch handles one event to completion.
func (s *Session) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case ReloadRequested:
		if r, ok := s.store.(settings.Refresher); ok {
			if err := r.Refresh(); err != nil {
				s.notifySettingsError("refresh", err)
			}
		}
		s.reload()
	case ConfigChanged:
		switch ev.Key {
		case settings.KeyFilePath, settings.KeyPageSize, settings.KeyPageNumber:
			s.reload()
		}
	case NextPage:
		s.navigate(Next)
	case PreviousPage:
		s.navigate(Previous)
	default:
		s.log.Warn("unknown event", "event", ev)
	}
}

func (s *Session) reload() {
	st, err := LoadState(s.store, s.defaultPageSize)
	if err != nil {
		s.notifySettingsError("load", err)
		return
	}

	res := Reload(st, s.load)

	s.mu.Lock()
	s.state = res.State
	if res.Payload != nil {
		p := *res.Payload
		s.current = &p
	}
	s.mu.Unlock()

	if res.Notice != nil {
		s.notifier.Notify(*res.Notice)
		return
	}
	if res.ResetPage {
		s.log.Info("page number out of range, resetting", "page_number", st.PageNumber, "error", document.ErrOutOfRangePage)
		if err := s.store.Set(settings.KeyPageNumber, 1); err != nil {
			s.notifySettingsError("reset page number", err)
		}
		return
	}

	s.log.Debug("page ready", "title", res.Payload.Title, "page", res.Payload.PageNumber, "total", res.Payload.Total)
	s.presenter.Deliver(*res.Payload)
}

// navigate reads the stored page number (unset counts as 0), moves it
// and writes it back. The store's change notification drives the reload.
func (s *Session) navigate(step func(State) State) {
	v, err := s.store.Get(settings.KeyPageNumber)
	if err != nil {
		s.notifySettingsError("read page number", err)
		return
	}
	n, _ := toInt(v)
	next := step(State{PageNumber: n})
	if err := s.store.Set(settings.KeyPageNumber, next.PageNumber); err != nil {
		s.notifySettingsError("store page number", err)
	}
}

func (s *Session) notifySettingsError(op string, err error) {
	s.notifier.Notify(Notice{
		Level:   LevelError,
		Err:     err,
		Message: "Settings " + op + " failed: " + err.Error(),
	})
}
