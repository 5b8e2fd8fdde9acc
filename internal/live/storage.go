package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the persistence port for an in-progress session snapshot.
// Absence of a snapshot is not an error; Load reports it with ok=false.
type Storage interface {
	Load() (snap *Snapshot, ok bool, err error)
	Save(snap *Snapshot) error
	Clear() error
}

// FileStorage keeps the snapshot as a single JSON file, the server-side
// counterpart of the browser's local-storage key.
type FileStorage struct {
	path string
}

// NewFileStorage stores the snapshot under dir using the given key, creating
// dir if needed.
func NewFileStorage(dir, key string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, key+".json")}, nil
}

func (f *FileStorage) Load() (*Snapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, true, nil
}

func (f *FileStorage) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is an in-memory Storage used in tests and as a degraded
// fallback when no snapshot directory is configured.
type MemoryStorage struct {
	snap *Snapshot
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() (*Snapshot, bool, error) {
	if m.snap == nil {
		return nil, false, nil
	}
	copied := *m.snap
	return &copied, true, nil
}

func (m *MemoryStorage) Save(snap *Snapshot) error {
	copied := *snap
	m.snap = &copied
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.snap = nil
	return nil
}
