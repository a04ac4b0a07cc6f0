// Package store defines where shoe listings live. The postgres-backed
// implementation is in internal/database; Memory and Cached are here.
package store

import (
	"context"
	"errors"
	"sort"

	"github.com/mswatii/shoecard/internal/models"
)

// ErrNotFound is returned when no shoe has the requested slug
var ErrNotFound = errors.New("shoe not found")

// Store is the catalog storage used by the API and the importer
type Store interface {
	List(ctx context.Context) ([]models.Shoe, error)
	Get(ctx context.Context, slug string) (models.Shoe, error)
	Upsert(ctx context.Context, shoe models.Shoe) error
}

// SortNewestFirst orders shoes by release date, newest first, then by slug
func SortNewestFirst(shoes []models.Shoe) {
	sort.SliceStable(shoes, func(i, j int) bool {
		if !shoes[i].ReleaseDate.Equal(shoes[j].ReleaseDate) {
			return shoes[i].ReleaseDate.After(shoes[j].ReleaseDate)
		}
		return shoes[i].Slug < shoes[j].Slug
	})
}
