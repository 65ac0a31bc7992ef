package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgallion1/txtread/internal/session"
	"github.com/dgallion1/txtread/internal/settings"
)

// settingsPatch is the body for PATCH /api/settings. Absent fields are
// left alone.
type settingsPatch struct {
	FilePath   *string `json:"filePath"`
	PageSize   *int    `json:"pageSize"`
	PageNumber *int    `json:"pageNumber"`
}

type update struct {
	key   string
	value any
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := session.LoadState(s.store, s.cfg.DefaultPageSize)
	if err != nil {
		jsonError(w, "failed to read settings: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handlePatchSettings writes through the store; its change
// notifications trigger the reload.
func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var patch settingsPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		jsonError(w, "invalid settings body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if patch.PageSize != nil && *patch.PageSize <= 0 {
		jsonError(w, "pageSize must be a positive integer", http.StatusBadRequest)
		return
	}

	var updates []update
	if patch.FilePath != nil {
		updates = append(updates, update{settings.KeyFilePath, strings.TrimSpace(*patch.FilePath)})
	}
	if patch.PageSize != nil {
		updates = append(updates, update{settings.KeyPageSize, *patch.PageSize})
	}
	if patch.PageNumber != nil {
		updates = append(updates, update{settings.KeyPageNumber, *patch.PageNumber})
	}

	for _, u := range updates {
		if err := s.store.Set(u.key, u.value); err != nil {
			jsonError(w, "failed to store "+u.key+": "+err.Error(), http.StatusBadGateway)
			return
		}
	}
	s.handleGetSettings(w, r)
}
