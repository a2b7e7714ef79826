package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/specdoc/pkg/domain"
)

// Store implements ports.ArtifactStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Artifact
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Artifact),
	}
}

// Save persists a copy of the artifact.
func (s *Store) Save(ctx context.Context, artifact *domain.Artifact) error {
	copied := artifact.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[artifact.Name] = copied
	return nil
}

// Load retrieves a copy of the artifact, so callers can't mutate the store.
func (s *Store) Load(ctx context.Context, name string) (*domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifact, ok := s.data[name]
	if !ok {
		return nil, domain.ErrArtifactNotFound
	}
	return artifact.Clone(), nil
}

// Delete removes the artifact.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored artifact names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
