package products

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

type MemStore struct {
	mu    sync.RWMutex
	items []Product
	newID func() string
}

func NewMemStore() *MemStore {
	return &MemStore{newID: uuid.NewString}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Insert(f Fields) Product {
	p := f.withID(s.newID())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
	return p
}

func (s *MemStore) Replace(id string, f Fields) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	s.items[i] = f.withID(id)
	return s.items[i], nil
}

func (s *MemStore) Delete(id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	p := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return p, nil
}

func (s *MemStore) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, false
	}
	return s.items[i], true
}

func (s *MemStore) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf must be called with s.mu held.
func (s *MemStore) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(p Product) bool { return p.ID == id })
}
