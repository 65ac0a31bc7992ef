package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists settings as one JSON object on disk.
type FileStore struct {
	path string
	t    *table
}

// OpenFileStore loads path, or starts empty when it does not exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, t: newTable()}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (any, error) {
	return s.t.get(key)
}

// Set writes the whole file before listeners are told about the change.
// On a write failure the in-memory value is rolled back.
func (s *FileStore) Set(key string, value any) error {
	changed, prev, existed, err := s.t.put(key, value)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.write(); err != nil {
		s.t.restore(key, prev, existed)
		return err
	}
	s.t.notify(key)
	return nil
}

func (s *FileStore) OnChange(fn func(key string)) {
	s.t.onChange(fn)
}

// Refresh re-reads the file. Listeners are not notified.
func (s *FileStore) Refresh() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	values := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("parse settings %s: %w", s.path, err)
		}
	}
	s.t.replace(values)
	return nil
}

func (s *FileStore) write() error {
	data, err := json.MarshalIndent(s.t.snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
