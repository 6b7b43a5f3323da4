package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

const stateFile = "state.json"

type fileState struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// FileKV keeps everything in one state.json under the data dir. The whole
// file is rewritten on every change. Values must be JSON.
type FileKV struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileKV(dataDir string) (*FileKV, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	kv := &FileKV{
		path: filepath.Join(dataDir, stateFile),
		s:    fileState{Version: 1, Entries: map[string]json.RawMessage{}},
	}
	if err := kv.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", kv.path, err)
	}
	return kv, nil
}

func (s *FileKV) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Entries == nil {
		loaded.Entries = map[string]json.RawMessage{}
	}
	if loaded.Version == 0 {
		loaded.Version = 1
	}
	s.s = loaded
	return nil
}

func (s *FileKV) saveLocked() error {
	b, err := json.MarshalIndent(s.s, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.s.Entries[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, model.ErrNotFound)
	}
	return cloneBytes(v), nil
}

func (s *FileKV) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return errors.New("file store: value is not valid JSON")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swapLocked(key, json.RawMessage(cloneBytes(value)), true)
}

func (s *FileKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.s.Entries[key]; !ok {
		return nil
	}
	return s.swapLocked(key, nil, false)
}

// swapLocked sets or removes key and writes the file. A failed write puts
// the previous entry back so memory never runs ahead of state.json.
func (s *FileKV) swapLocked(key string, v json.RawMessage, set bool) error {
	prev, had := s.s.Entries[key]
	if set {
		s.s.Entries[key] = v
	} else {
		delete(s.s.Entries, key)
	}
	if err := s.saveLocked(); err != nil {
		if had {
			s.s.Entries[key] = prev
		} else {
			delete(s.s.Entries, key)
		}
		return err
	}
	return nil
}

func (s *FileKV) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterKeys(s.s.Entries, prefix), nil
}

func (s *FileKV) Close() error { return nil }
