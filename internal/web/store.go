package web

import (
	"sync"
	"time"

	"github.com/derekprior/doubles/internal/schedule"
	"github.com/google/uuid"
)

// Snapshot is a generated tournament kept for later viewing and download.
type Snapshot struct {
	ID         string
	CreatedAt  time.Time
	Tournament *schedule.Tournament
}

// Store keeps snapshots between requests.
type Store interface {
	Save(t *schedule.Tournament) Snapshot
	Get(id string) (Snapshot, bool)
}

type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]Snapshot)}
}

func (s *MemoryStore) Save(t *schedule.Tournament) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		Tournament: t,
	}
	s.snapshots[snap.ID] = snap
	return snap
}

func (s *MemoryStore) Get(id string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[id]
	return snap, ok
}
