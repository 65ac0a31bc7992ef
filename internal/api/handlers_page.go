package api

import (
	"net/http"

	"github.com/dgallion1/txtread/internal/session"
)

// handleCurrentPage returns the payload most recently shown.
func (s *Server) handleCurrentPage(w http.ResponseWriter, r *http.Request) {
	p, ok := s.session.Current()
	if !ok {
		jsonError(w, "no page loaded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleEvent queues ev for the event loop. The resulting page reaches
// views over the WebSocket.
func (s *Server) handleEvent(ev session.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.events.Submit(ev); err != nil {
			jsonError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
	}
}
