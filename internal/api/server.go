package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/txtread/internal/config"
	"github.com/dgallion1/txtread/internal/session"
	"github.com/dgallion1/txtread/internal/settings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Submitter queues session events; pipeline.Orchestrator implements it.
type Submitter interface {
	Submit(ev session.Event) error
}

// Server is the HTTP and WebSocket front end of the reader.
type Server struct {
	router  chi.Router
	events  Submitter
	session *session.Session
	store   settings.Store
	log     *slog.Logger
	cfg     config.Config
	help    []byte
}

// NewServer creates and configures the HTTP server.
func NewServer(events Submitter, s *session.Session, store settings.Store, log *slog.Logger, cfg config.Config) (*Server, error) {
	help, err := renderHelp()
	if err != nil {
		return nil, err
	}
	srv := &Server{
		events:  events,
		session: s,
		store:   store,
		log:     log,
		cfg:     cfg,
		help:    help,
	}
	srv.setupRoutes()
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePanel)
	r.Get("/help", s.handleHelp)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/ws", s.handleWebSocket)

		r.Get("/api/page", s.handleCurrentPage)
		r.Post("/api/page/next", s.handleEvent(session.NextPage{}))
		r.Post("/api/page/previous", s.handleEvent(session.PreviousPage{}))
		r.Post("/api/restart", s.handleEvent(session.ReloadRequested{}))

		r.Get("/api/settings", s.handleGetSettings)
		r.Patch("/api/settings", s.handlePatchSettings)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
