package card

import (
	"fmt"
	"time"

	"github.com/mswatii/shoecard/internal/format"
	"github.com/mswatii/shoecard/internal/models"
)

// Variant is the display classification of a card. Exactly one applies.
type Variant int

const (
	Default Variant = iota
	OnSale
	NewRelease
)

// Classify picks the variant for a shoe at the given moment. A present sale
// price wins over a recent release date, even when the sale price is zero.
func Classify(shoe models.Shoe, now time.Time) Variant {
	switch {
	case shoe.SalePrice != nil:
		return OnSale
	case format.IsNewRelease(shoe.ReleaseDate, now):
		return NewRelease
	default:
		return Default
	}
}

func (v Variant) String() string {
	switch v {
	case OnSale:
		return "on-sale"
	case NewRelease:
		return "new-release"
	default:
		return "default"
	}
}

// Label is the badge text, empty for Default
func (v Variant) Label() string {
	switch v {
	case OnSale:
		return "Sale"
	case NewRelease:
		return "Just Released!"
	default:
		return ""
	}
}

// MarshalText encodes the variant as its kebab-case name
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText
func (v *Variant) UnmarshalText(text []byte) error {
	switch string(text) {
	case "on-sale":
		*v = OnSale
	case "new-release":
		*v = NewRelease
	case "default":
		*v = Default
	default:
		return fmt.Errorf("unknown variant %q", text)
	}
	return nil
}
