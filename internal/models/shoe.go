package models

import (
	"time"
)

// Shoe is a single catalog listing as stored and rendered
type Shoe struct {
	Slug        string    `json:"slug" db:"slug"`
	Name        string    `json:"name" db:"name"`
	ImageSrc    string    `json:"image_src" db:"image_src"`
	Price       float64   `json:"price" db:"price"`                     // Base price in dollars
	SalePrice   *float64  `json:"sale_price,omitempty" db:"sale_price"` // nil when the shoe is not discounted
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	NumOfColors int       `json:"num_of_colors" db:"num_of_colors"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CatalogShoe is the row shape of an imported catalog feed
type CatalogShoe struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	ImageSrc    string   `json:"imageSrc"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	ReleaseDate int64    `json:"releaseDate"` // Unix milliseconds
	NumOfColors int      `json:"numOfColors"`
}

// ToShoe converts a feed row into the stored model
func (c CatalogShoe) ToShoe() Shoe {
	return Shoe{
		Slug:        c.Slug,
		Name:        c.Name,
		ImageSrc:    c.ImageSrc,
		Price:       c.Price,
		SalePrice:   c.SalePrice,
		ReleaseDate: time.UnixMilli(c.ReleaseDate).UTC(),
		NumOfColors: c.NumOfColors,
	}
}
