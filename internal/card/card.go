// Package card turns a shoe listing into the view model of its product
// card: which badge to show, how to draw the base price and whether the
// sale price is visible.
package card

import (
	"net/url"
	"time"

	"github.com/mswatii/shoecard/internal/format"
	"github.com/mswatii/shoecard/internal/models"
	"github.com/mswatii/shoecard/internal/theme"
)

// Badge is the corner label of a sale or new-release card
type Badge struct {
	Variant   Variant `json:"variant"`
	Text      string  `json:"text"`
	Fill      string  `json:"fill"`
	TextColor string  `json:"text_color"`
}

// Card is everything a renderer needs to draw one shoe
type Card struct {
	Href      string  `json:"href"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	ImageSrc  string  `json:"image_src"`
	Variant   Variant `json:"variant"`
	ColorInfo string  `json:"color_info"`

	Price       string `json:"price"`
	PriceColor  string `json:"price_color"`
	PriceStruck bool   `json:"price_struck"`

	SalePrice     string `json:"sale_price,omitempty"`
	ShowSalePrice bool   `json:"show_sale_price"`

	// Badge is nil for Default cards
	Badge *Badge `json:"badge,omitempty"`

	// SaleQuirk marks a zero sale price: the card is on sale but shows no sale price
	SaleQuirk bool `json:"sale_quirk,omitempty"`
}

// Build evaluates a shoe against now and the theme. It is recomputed on
// every call; nothing is cached between renders.
func Build(shoe models.Shoe, now time.Time, th theme.Theme) Card {
	variant := Classify(shoe, now)

	c := Card{
		Href:       "/shoe/" + url.PathEscape(shoe.Slug),
		Slug:       shoe.Slug,
		Name:       shoe.Name,
		ImageSrc:   shoe.ImageSrc,
		Variant:    variant,
		ColorInfo:  format.Pluralize("Color", shoe.NumOfColors),
		Price:      format.Price(shoe.Price),
		PriceColor: th.Colors.Gray900,
	}

	if variant == OnSale {
		c.PriceColor = th.Colors.Gray700
		c.PriceStruck = true
	}

	if shoe.SalePrice != nil {
		if *shoe.SalePrice > 0 {
			c.SalePrice = format.Price(*shoe.SalePrice)
			c.ShowSalePrice = true
		} else {
			c.SaleQuirk = true
		}
	}

	c.Badge = badgeFor(variant, th)
	return c
}

// BuildAll builds one card per shoe, all against the same moment
func BuildAll(shoes []models.Shoe, now time.Time, th theme.Theme) []Card {
	cards := make([]Card, 0, len(shoes))
	for _, shoe := range shoes {
		cards = append(cards, Build(shoe, now, th))
	}
	return cards
}

func badgeFor(v Variant, th theme.Theme) *Badge {
	var fill string
	switch v {
	case OnSale:
		fill = th.Colors.Primary
	case NewRelease:
		fill = th.Colors.Secondary
	default:
		return nil
	}
	return &Badge{
		Variant:   v,
		Text:      v.Label(),
		Fill:      fill,
		TextColor: th.Colors.White,
	}
}
