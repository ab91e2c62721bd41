package products

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyboard() Fields {
	return Fields{Name: "Keyboard", Description: "Mechanical", Price: 49.9, Category: "Electronics", InStock: true}
}

func mug() Fields {
	return Fields{Name: "Mug", Description: "Ceramic", Price: 7.5, Category: "Kitchen", InStock: false}
}

func TestMemStore_InsertAssignsUniqueIDs(t *testing.T) {
	s := NewMemStore()

	a := s.Insert(keyboard())
	b := s.Insert(keyboard())

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, keyboard().withID(a.ID), a)
	assert.Equal(t, 2, s.Len())
}

func TestMemStore_AllPreservesInsertionOrder(t *testing.T) {
	s := NewMemStore()
	a := s.Insert(keyboard())
	b := s.Insert(mug())
	c := s.Insert(keyboard())

	assert.Equal(t, []Product{a, b, c}, s.All())
}

func TestMemStore_AllReturnsCopy(t *testing.T) {
	s := NewMemStore()
	s.Insert(keyboard())

	all := s.All()
	all[0].Name = "changed"

	p, ok := s.Get(all[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Keyboard", p.Name)
}

func TestMemStore_AllOnEmptyStoreIsNotNil(t *testing.T) {
	assert.NotNil(t, NewMemStore().All())
}

func TestMemStore_Get(t *testing.T) {
	s := NewMemStore()
	p := s.Insert(mug())

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestMemStore_ReplaceOverwritesAllFieldsInPlace(t *testing.T) {
	s := NewMemStore()
	a := s.Insert(keyboard())
	b := s.Insert(mug())

	repl := Fields{Name: "Kettle", Description: "", Price: 0, Category: "kitchen", InStock: false}
	got, err := s.Replace(a.ID, repl)
	require.NoError(t, err)

	assert.Equal(t, repl.withID(a.ID), got)
	assert.Equal(t, []Product{got, b}, s.All())
}

func TestMemStore_ReplaceMissing(t *testing.T) {
	s := NewMemStore()
	s.Insert(keyboard())

	_, err := s.Replace("missing", mug())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Keyboard", s.All()[0].Name)
}

func TestMemStore_Delete(t *testing.T) {
	s := NewMemStore()
	a := s.Insert(keyboard())
	b := s.Insert(mug())
	c := s.Insert(keyboard())

	got, err := s.Delete(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Equal(t, []Product{a, c}, s.All())

	_, err = s.Delete(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_ConcurrentWriters(t *testing.T) {
	s := NewMemStore()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := s.Insert(mug())
			_ = s.All()
			_, _ = s.Replace(p.ID, keyboard())
		}()
	}
	wg.Wait()

	assert.Equal(t, n, s.Len())
	for _, p := range s.All() {
		assert.Equal(t, "Keyboard", p.Name)
	}
}
