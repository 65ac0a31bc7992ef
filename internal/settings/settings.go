package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
)

// Recognized keys.
const (
	KeyFilePath   = "filePath"
	KeyPageSize   = "pageSize"
	KeyPageNumber = "pageNumber"
)

// Store is the configuration store the reader persists its state in.
// Set notifies OnChange listeners when the stored value changed.
type Store interface {
	// Get returns the value for key, or nil when the key is unset.
	Get(key string) (any, error)
	Set(key string, value any) error
	OnChange(fn func(key string))
}

// Refresher is implemented by stores whose backing data can change
// outside the process.
type Refresher interface {
	Refresh() error
}

// table is the in-memory core shared by the stores. Values are kept as
// JSON so a change check does not depend on the Go type that was set.
type table struct {
	mu        sync.Mutex
	values    map[string]json.RawMessage
	listeners []func(key string)
}

func newTable() *table {
	return &table{values: make(map[string]json.RawMessage)}
}

func (t *table) get(key string) (any, error) {
	t.mu.Lock()
	raw, ok := t.values[key]
	t.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decode(raw)
}

// put stores value and reports whether it differs from the previous one.
// The previous raw value is returned so callers can roll back.
func (t *table) put(key string, value any) (changed bool, prev json.RawMessage, existed bool, err error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, nil, false, fmt.Errorf("marshal %s: %w", key, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	prev, existed = t.values[key]
	if existed && bytes.Equal(prev, raw) {
		return false, prev, existed, nil
	}
	t.values[key] = raw
	return true, prev, existed, nil
}

func (t *table) restore(key string, prev json.RawMessage, existed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existed {
		t.values[key] = prev
	} else {
		delete(t.values, key)
	}
}

func (t *table) forget(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.values, key)
}

func (t *table) onChange(fn func(key string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

func (t *table) notify(key string) {
	t.mu.Lock()
	ls := append([]func(string){}, t.listeners...)
	t.mu.Unlock()
	for _, fn := range ls {
		fn(key)
	}
}

func (t *table) snapshot() map[string]json.RawMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]json.RawMessage, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

func (t *table) replace(values map[string]json.RawMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values = values
}

func decode(raw json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return v, nil
}

// MemoryStore keeps settings in memory only.
type MemoryStore struct {
	t *table
}

// NewMemoryStore returns a store seeded with initial values.
func NewMemoryStore(initial map[string]any) *MemoryStore {
	s := &MemoryStore{t: newTable()}
	for k, v := range initial {
		s.t.put(k, v)
	}
	return s
}

func (s *MemoryStore) Get(key string) (any, error) {
	return s.t.get(key)
}

func (s *MemoryStore) Set(key string, value any) error {
	changed, _, _, err := s.t.put(key, value)
	if err != nil {
		return err
	}
	if changed {
		s.t.notify(key)
	}
	return nil
}

func (s *MemoryStore) OnChange(fn func(key string)) {
	s.t.onChange(fn)
}
