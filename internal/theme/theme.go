// Package theme describes the colour palette and badge geometry used to
// draw shoe cards. A Theme is a plain value: renderers receive it
// explicitly and never reach for package state.
package theme

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Colors is the palette, as #RRGGBB hex strings
type Colors struct {
	White     string `yaml:"white" json:"white"`
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Gray700   string `yaml:"gray_700" json:"gray_700"`
	Gray900   string `yaml:"gray_900" json:"gray_900"`
}

// Weights are CSS font weights
type Weights struct {
	Normal int `yaml:"normal" json:"normal"`
	Medium int `yaml:"medium" json:"medium"`
	Bold   int `yaml:"bold" json:"bold"`
}

// Badge is the fixed geometry of the sale / new-release label
type Badge struct {
	PaddingY     int     `yaml:"padding_y" json:"padding_y"`         // px
	PaddingX     int     `yaml:"padding_x" json:"padding_x"`         // px
	Radius       int     `yaml:"radius" json:"radius"`               // px
	TopPercent   float64 `yaml:"top_percent" json:"top_percent"`     // offset from the card top
	RightPercent float64 `yaml:"right_percent" json:"right_percent"` // offset from the card right edge, may be negative
}

// Theme bundles everything a renderer needs besides the card itself
type Theme struct {
	Colors    Colors  `yaml:"colors" json:"colors"`
	Weights   Weights `yaml:"weights" json:"weights"`
	Badge     Badge   `yaml:"badge" json:"badge"`
	CardWidth int     `yaml:"card_width" json:"card_width"` // px
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Default returns the stock palette
func Default() Theme {
	return Theme{
		Colors: Colors{
			White:     "#FFFFFF",
			Primary:   "#C62A5E",
			Secondary: "#6868D9",
			Gray700:   "#61646B",
			Gray900:   "#313335",
		},
		Weights: Weights{
			Normal: 500,
			Medium: 600,
			Bold:   800,
		},
		Badge: Badge{
			PaddingY:     6,
			PaddingX:     9,
			Radius:       2,
			TopPercent:   5,
			RightPercent: -1,
		},
		CardWidth: 370,
	}
}

// Load reads a YAML theme file on top of Default. An empty path returns
// the default theme unchanged.
func Load(path string) (Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("error reading theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("error parsing theme file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every colour is a #RRGGBB value and the sizes are sane
func (t Theme) Validate() error {
	colors := map[string]string{
		"white":     t.Colors.White,
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"gray_700":  t.Colors.Gray700,
		"gray_900":  t.Colors.Gray900,
	}
	var errs []error
	for name, value := range colors {
		if !hexColor.MatchString(value) {
			errs = append(errs, fmt.Errorf("color %s: %q is not a #RRGGBB value", name, value))
		}
	}
	if t.CardWidth <= 0 {
		errs = append(errs, errors.New("card_width must be positive"))
	}
	if t.Badge.PaddingX < 0 || t.Badge.PaddingY < 0 || t.Badge.Radius < 0 {
		errs = append(errs, errors.New("badge padding and radius must not be negative"))
	}
	return errors.Join(errs...)
}
