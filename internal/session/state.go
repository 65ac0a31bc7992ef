package session

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dgallion1/txtread/internal/settings"
)

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 1000

// State is the reader configuration one reload works from.
type State struct {
	FilePath   string `json:"filePath"`
	PageSize   int    `json:"pageSize"`
	PageNumber int    `json:"pageNumber"`
}

// Configured reports whether a non-blank file path is set.
func (s State) Configured() bool {
	return strings.TrimSpace(s.FilePath) != ""
}

// PageIndex is the 0-based page the state points at. Page numbers
// below 1 resolve to the first page.
func (s State) PageIndex() int {
	return max(s.PageNumber-1, 0)
}

// Next returns the state one page further. Bounds are not checked here;
// an overshoot is repaired by the next Reload.
func Next(s State) State {
	s.PageNumber++
	return s
}

// Previous returns the state one page back, which may go below 1.
func Previous(s State) State {
	s.PageNumber--
	return s
}

// LoadState reads the reader keys from store. Missing, zero or invalid
// page sizes fall back to defaultPageSize; a missing or zero page number
// reads as 1.
func LoadState(store settings.Store, defaultPageSize int) (State, error) {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	st := State{PageSize: defaultPageSize, PageNumber: 1}

	v, err := store.Get(settings.KeyFilePath)
	if err != nil {
		return st, err
	}
	if s, ok := v.(string); ok {
		st.FilePath = s
	}

	v, err = store.Get(settings.KeyPageSize)
	if err != nil {
		return st, err
	}
	if n, ok := toInt(v); ok && n > 0 {
		st.PageSize = n
	}

	v, err = store.Get(settings.KeyPageNumber)
	if err != nil {
		return st, err
	}
	if n, ok := toInt(v); ok && n != 0 {
		st.PageNumber = n
	}
	return st, nil
}

// toInt accepts the integral forms a store may hand back.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}
