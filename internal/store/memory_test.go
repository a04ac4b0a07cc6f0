package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mswatii/shoecard/internal/models"
)

func TestMemoryUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sale := 110.0
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "a", Name: "A", Price: 150, SalePrice: &sale}))

	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, 110.0, *got.SalePrice)
	assert.False(t, got.CreatedAt.IsZero())

	*got.SalePrice = 1
	again, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 110.0, *again.SalePrice, "stored value must not be shared with callers")
}

func TestMemoryGetMissing(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpsertKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return first }
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "a", Name: "old"}))

	m.now = func() time.Time { return first.Add(time.Hour) }
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "a", Name: "new"}))

	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, first, got.CreatedAt)
	assert.Equal(t, first.Add(time.Hour), got.UpdatedAt)
}

func TestMemoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "old", ReleaseDate: base}))
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "new", ReleaseDate: base.AddDate(0, 2, 0)}))
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "b-mid", ReleaseDate: base.AddDate(0, 1, 0)}))
	require.NoError(t, m.Upsert(ctx, models.Shoe{Slug: "a-mid", ReleaseDate: base.AddDate(0, 1, 0)}))

	shoes, err := m.List(ctx)
	require.NoError(t, err)
	var slugs []string
	for _, s := range shoes {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"new", "a-mid", "b-mid", "old"}, slugs)
}
