package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dgallion1/txtread/internal/pipeline"
	"github.com/dgallion1/txtread/internal/session"
	"golang.org/x/net/websocket"
)

const wsWriteTimeout = 10 * time.Second

// Commands a view sends.
const (
	CommandMounted      = "mounted"
	CommandNextPage     = "nextPage"
	CommandPreviousPage = "previousPage"
	CommandRestart      = "restart"
)

type clientMessage struct {
	Command string `json:"command"`
}

// eventFor maps a view command to a session event.
func eventFor(command string) (session.Event, bool) {
	switch command {
	case CommandMounted, CommandRestart:
		return session.ReloadRequested{}, true
	case CommandNextPage:
		return session.NextPage{}, true
	case CommandPreviousPage:
		return session.PreviousPage{}, true
	}
	return nil, false
}

// wsView adapts a WebSocket connection to session.View.
type wsView struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (v *wsView) Send(msg session.Message) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return websocket.JSON.Send(v.conn, msg)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws := websocket.Server{
		Handshake: s.checkOrigin,
		Handler:   s.serveView,
	}
	ws.ServeHTTP(w, r)
}

// checkOrigin admits any client once the API key has been checked.
// Without a key, a browser page may only connect from the server's own
// origin. Requests with no Origin header come from non-browser clients.
func (s *Server) checkOrigin(cfg *websocket.Config, r *http.Request) error {
	origin, err := websocket.Origin(cfg, r)
	if err != nil {
		return err
	}
	cfg.Origin = origin
	if s.cfg.APIKey != "" || origin == nil {
		return nil
	}
	if origin.Host != r.Host {
		s.log.Warn("websocket origin rejected", "origin", origin.String(), "host", r.Host)
		return fmt.Errorf("origin %s not allowed", origin)
	}
	return nil
}

func (s *Server) serveView(conn *websocket.Conn) {
	defer conn.Close()

	id := pipeline.NewID()
	log := s.log.With("view", id)
	presenter := s.session.Presenter()
	presenter.Attach(id, &wsView{conn: conn})
	defer presenter.Detach(id)
	log.Info("view attached")

	for {
		var msg clientMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("view receive failed", "error", err)
			}
			log.Info("view detached")
			return
		}
		ev, ok := eventFor(msg.Command)
		if !ok {
			log.Warn("unknown view command", "command", msg.Command)
			continue
		}
		if err := s.events.Submit(ev); err != nil {
			log.Error("submit view event", "command", msg.Command, "error", err)
		}
	}
}
