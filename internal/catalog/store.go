package catalog

import (
	"fmt"
	"os"
	"sync"

	yamlv3 "gopkg.in/yaml.v3"
)

// Store is the in-memory activity catalog. Embedding vectors live in a
// side table keyed by activity id rather than on the items themselves,
// so a catalog reload starts with a clean cache. Concurrent ranking
// calls may race to compute the same embedding; the computation is
// deterministic per text, so the last write wins with an equal value.
type Store struct {
	mu         sync.RWMutex
	items      []Activity
	index      map[string]int
	embeddings map[string][]float32
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		index:      make(map[string]int),
		embeddings: make(map[string][]float32),
	}
}

// NewSeededStore creates a store pre-loaded with the built-in catalog.
func NewSeededStore() *Store {
	s := NewStore()
	for _, a := range seedActivities {
		s.Upsert(a)
	}
	return s
}

// LoadFile replaces the store contents with activities from a YAML
// file. The embedding cache is discarded.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var doc struct {
		Activities []Activity `yaml:"activities"`
	}
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.index = make(map[string]int)
	s.embeddings = make(map[string][]float32)
	for _, a := range doc.Activities {
		if a.ID == "" {
			return fmt.Errorf("catalog %s: activity %q has no id", path, a.Name)
		}
		s.upsertLocked(a)
	}
	return nil
}

// Upsert adds an activity or replaces an existing one with the same id,
// invalidating its cached embedding.
func (s *Store) Upsert(a Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(a)
}

func (s *Store) upsertLocked(a Activity) {
	if i, ok := s.index[a.ID]; ok {
		s.items[i] = a
		delete(s.embeddings, a.ID)
		return
	}
	s.index[a.ID] = len(s.items)
	s.items = append(s.items, a)
}

// All returns the activities in insertion order.
func (s *Store) All() []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Activity, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the activity with the given id.
func (s *Store) Get(id string) (Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Activity{}, false
	}
	return s.items[i], true
}

// Count returns the number of activities.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Embedding returns the cached vector for an activity id.
func (s *Store) Embedding(id string) ([]float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vec, ok := s.embeddings[id]
	return vec, ok
}

// SetEmbedding caches a vector for an activity id. Unknown ids are
// ignored so a stale ranking pass cannot grow the table unbounded.
func (s *Store) SetEmbedding(id string, vec []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return
	}
	s.embeddings[id] = vec
}
