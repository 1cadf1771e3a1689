package todo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore keeps lists in process memory. Lists are copied on the way in
// and out so callers never share slices with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string]List
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string]List)}
}

func (s *MemoryStore) Fetch(_ context.Context, listID string) (List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lists[listID]
	if !ok {
		return emptyList(listID), nil
	}
	return l.clone(), nil
}

func (s *MemoryStore) Replace(_ context.Context, list List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[list.ID] = list.clone()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists)
}

// SaveSnapshot writes every list to path as JSON, replacing the file
// atomically.
func (s *MemoryStore) SaveSnapshot(path string) error {
	s.mu.RLock()
	lists := make([]List, 0, len(s.lists))
	for _, l := range s.lists {
		lists = append(lists, l.clone())
	}
	s.mu.RUnlock()
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })

	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create snapshot dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create snapshot temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close snapshot")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "rename snapshot")
}

// LoadSnapshot replaces the store content with the lists saved at path. A
// missing file leaves the store untouched and returns 0.
func (s *MemoryStore) LoadSnapshot(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "read snapshot")
	}
	var lists []List
	if err := json.Unmarshal(data, &lists); err != nil {
		return 0, errors.Wrapf(err, "decode snapshot %s", path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = make(map[string]List, len(lists))
	for _, l := range lists {
		if l.Items == nil {
			l.Items = []Item{}
		}
		s.lists[l.ID] = l
	}
	return len(lists), nil
}
