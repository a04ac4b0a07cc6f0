package store

import (
	"context"
	"sync"
	"time"

	"github.com/mswatii/shoecard/internal/models"
)

// Memory keeps shoes in a map. It backs the server when no database is
// configured, and the tests.
type Memory struct {
	mu    sync.RWMutex
	shoes map[string]models.Shoe
	now   func() time.Time
}

// NewMemory returns an empty store
func NewMemory() *Memory {
	return &Memory{
		shoes: make(map[string]models.Shoe),
		now:   time.Now,
	}
}

// List returns a copy of every shoe, newest release first
func (m *Memory) List(_ context.Context) ([]models.Shoe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Shoe, 0, len(m.shoes))
	for _, shoe := range m.shoes {
		out = append(out, copyShoe(shoe))
	}
	SortNewestFirst(out)
	return out, nil
}

// Get returns the shoe with the given slug or ErrNotFound
func (m *Memory) Get(_ context.Context, slug string) (models.Shoe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shoe, ok := m.shoes[slug]
	if !ok {
		return models.Shoe{}, ErrNotFound
	}
	return copyShoe(shoe), nil
}

// Upsert inserts a shoe or replaces the one with the same slug
func (m *Memory) Upsert(_ context.Context, shoe models.Shoe) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	shoe = copyShoe(shoe)
	if existing, ok := m.shoes[shoe.Slug]; ok {
		shoe.CreatedAt = existing.CreatedAt
	} else {
		shoe.CreatedAt = now
	}
	shoe.UpdatedAt = now
	m.shoes[shoe.Slug] = shoe
	return nil
}

// copyShoe detaches the sale price pointer so callers cannot mutate stored state
func copyShoe(shoe models.Shoe) models.Shoe {
	if shoe.SalePrice != nil {
		v := *shoe.SalePrice
		shoe.SalePrice = &v
	}
	return shoe
}
