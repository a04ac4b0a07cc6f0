// Package catalog imports shoe feeds into a store and checks each row at
// the boundary.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/mswatii/shoecard/internal/models"
)

var (
	// ErrInvalidShoe covers rows missing a slug or with an unusable price
	ErrInvalidShoe = errors.New("invalid shoe")
	// ErrSaleAboveBase is returned when the sale price exceeds the base price
	ErrSaleAboveBase = errors.New("sale price above base price")
)

// Validate checks a feed row before it is stored. Cards themselves never
// validate; they render whatever the store holds.
func Validate(shoe models.Shoe) error {
	if shoe.Slug == "" {
		return fmt.Errorf("%w: missing slug", ErrInvalidShoe)
	}
	if !finite(shoe.Price) || shoe.Price < 0 {
		return fmt.Errorf("%w: price %v", ErrInvalidShoe, shoe.Price)
	}
	if shoe.SalePrice != nil {
		sale := *shoe.SalePrice
		if !finite(sale) || sale < 0 {
			return fmt.Errorf("%w: sale price %v", ErrInvalidShoe, sale)
		}
		if sale > shoe.Price {
			return fmt.Errorf("%w: %v > %v", ErrSaleAboveBase, sale, shoe.Price)
		}
	}
	if shoe.NumOfColors < 0 {
		return fmt.Errorf("%w: negative color count %d", ErrInvalidShoe, shoe.NumOfColors)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
