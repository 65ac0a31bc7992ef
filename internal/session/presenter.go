package session

import (
	"log/slog"
	"sync"

	"github.com/dgallion1/txtread/internal/document"
)

// Commands exchanged with views.
const (
	CommandInit   = "init"
	CommandSend   = "send"
	CommandNotice = "notice"
)

// Message is one server-to-view message.
type Message struct {
	Command string `json:"command"`
	Message any    `json:"message,omitempty"`
}

// View is an attached presentation surface.
type View interface {
	Send(msg Message) error
}

// Outbox holds at most one payload waiting for a view. Set overwrites,
// Take empties it.
type Outbox struct {
	p *document.Payload
}

func (o *Outbox) Set(p document.Payload) {
	o.p = &p
}

func (o *Outbox) Take() (document.Payload, bool) {
	if o.p == nil {
		return document.Payload{}, false
	}
	p := *o.p
	o.p = nil
	return p, true
}

// Pending reports whether a payload is waiting.
func (o *Outbox) Pending() bool {
	return o.p != nil
}

// Presenter fans payloads out to attached views and buffers the latest
// payload while none is attached.
type Presenter struct {
	mu     sync.Mutex
	views  map[string]View
	outbox Outbox
	log    *slog.Logger
}

func NewPresenter(log *slog.Logger) *Presenter {
	if log == nil {
		log = slog.Default()
	}
	return &Presenter{views: make(map[string]View), log: log}
}

// Attach registers v, acknowledges it with init and hands it the
// buffered payload, if any.
func (p *Presenter) Attach(id string, v View) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.views[id] = v
	if err := v.Send(Message{Command: CommandInit, Message: "ok"}); err != nil {
		p.log.Warn("view init failed", "view", id, "error", err)
		delete(p.views, id)
		return
	}
	if payload, ok := p.outbox.Take(); ok {
		p.send(id, v, Message{Command: CommandSend, Message: payload})
	}
}

// Detach forgets the view with id.
func (p *Presenter) Detach(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.views, id)
}

// Views returns the number of attached views.
func (p *Presenter) Views() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.views)
}

// Deliver sends payload to every view, or buffers it when there is none.
func (p *Presenter) Deliver(payload document.Payload) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.views) == 0 {
		p.outbox.Set(payload)
		return
	}
	for id, v := range p.views {
		p.send(id, v, Message{Command: CommandSend, Message: payload})
	}
}

// Notify forwards a notice to attached views. Notices are not buffered.
func (p *Presenter) Notify(n Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, v := range p.views {
		p.send(id, v, Message{Command: CommandNotice, Message: n})
	}
}

// send drops views that fail; callers hold p.mu.
func (p *Presenter) send(id string, v View, msg Message) {
	if err := v.Send(msg); err != nil {
		p.log.Warn("view send failed, detaching", "view", id, "command", msg.Command, "error", err)
		delete(p.views, id)
	}
}
