// Package storage persists named slots of JSON-encoded state. Each slot is
// one value serialized as a single blob, rewritten in full on every write.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrWrite wraps any failure to persist a slot. Callers treat the operation
// as not having happened.
var ErrWrite = errors.New("storage write failed")

// ErrRead wraps any failure to load a slot.
var ErrRead = errors.New("storage read failed")

// Store reads and writes named slots. Implementations must be safe for
// concurrent use and must not leave a slot partially written.
type Store interface {
	// Read unmarshals the slot into v. The returned bool is false when the
	// slot has never been written.
	Read(slot string, v interface{}) (bool, error)
	// Write replaces the slot's contents atomically.
	Write(slot string, v interface{}) error
}

// FileStore keeps each slot in <dir>/<slot>.json. Writes go to a temp file
// in the same directory followed by a rename, so readers never observe a
// half-written slot.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileStore) Read(slot string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read slot %s: %v", ErrRead, slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode slot %s: %v", ErrRead, slot, err)
	}
	return true, nil
}

func (s *FileStore) Write(slot string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode slot %s: %v", ErrWrite, slot, err)
	}

	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file for slot %s: %v", ErrWrite, slot, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write slot %s: %v", ErrWrite, slot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close slot %s: %v", ErrWrite, slot, err)
	}
	if err := os.Rename(tmpName, s.path(slot)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: swap slot %s: %v", ErrWrite, slot, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests. FailWrites forces every Write
// to fail without changing state.
type MemStore struct {
	mu         sync.Mutex
	slots      map[string][]byte
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Read(slot string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.slots[slot]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode slot %s: %v", ErrRead, slot, err)
	}
	return true, nil
}

func (s *MemStore) Write(slot string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return fmt.Errorf("%w: slot %s: injected failure", ErrWrite, slot)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode slot %s: %v", ErrWrite, slot, err)
	}
	s.slots[slot] = data
	return nil
}
